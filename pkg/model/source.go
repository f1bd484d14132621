package model

import "context"

// Source is the game-data service the model reads from. Implementations return an
// error wrapping ErrNotFound when the named resource does not exist.
type Source interface {
	VersionGroupNames(ctx context.Context) ([]string, error)
	VersionGroup(ctx context.Context, name string) (*VersionGroup, error)
	Generation(ctx context.Context, id int) (*Generation, error)
	Pokemon(ctx context.Context, name string) (*Pokemon, error)
	Move(ctx context.Context, name string) (*Move, error)
	Type(ctx context.Context, name string) (*Type, error)
	Close() error
}
