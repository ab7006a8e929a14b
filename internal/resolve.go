package internal

import "context"

// Resolve asserts that the record referenced by id exists and is active. entity names the
// referenced record in the NotFound message, ie: "User" or "Address".
func Resolve[T any](ctx context.Context, entity string, id uint, lookup func(context.Context, uint) (*T, error)) (*T, error) {
	found, err := lookup(ctx, id)
	if err != nil {
		return nil, WrapStoreErrorf(err, entity, id, "Failed to resolve %s %d", entity, id)
	}
	return found, nil
}

// ResolveOptional is Resolve for nullable references. A nil id resolves to nil.
func ResolveOptional[T any](ctx context.Context, entity string, id *uint, lookup func(context.Context, uint) (*T, error)) (*T, error) {
	if id == nil {
		return nil, nil
	}
	return Resolve(ctx, entity, *id, lookup)
}
