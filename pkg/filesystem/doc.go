// Package filesystem provides implementations of the types.FS
// interface. NewOS is the real filesystem used by the CLI; NewAferoFS
// wraps any afero.Fs so the engine can run against afero.NewMemMapFs()
// in tests.
package filesystem
