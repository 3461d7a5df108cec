// Package history records TUPL check runs in a SQLite database so that
// earlier results can be listed and compared.
//
//	store, err := history.Open(history.Config{Path: "runs.db"})
//	...
//	err = store.Record(ctx, history.NewRun(path, result, checkErr))
package history
