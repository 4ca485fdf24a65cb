package tokenstore

import "context"

type unavailableStore struct{}

// Unavailable returns a Store for environments without durable storage.
// Every operation fails with ErrUnavailable; callers treat that as
// "start tokenless, keep state in memory only".
func Unavailable() Store {
	return unavailableStore{}
}

func (unavailableStore) Get(context.Context, string) (string, error) { return "", ErrUnavailable }
func (unavailableStore) Set(context.Context, string, string) error   { return ErrUnavailable }
func (unavailableStore) Delete(context.Context, string) error        { return ErrUnavailable }
func (unavailableStore) Close() error                                { return nil }
