package repository

import (
	"context"
	"encoding/json"

	"balancestore/internal/infra"
	"balancestore/internal/infra/kvstore"
	"balancestore/internal/usecase/readmodel"
)

type UserRepository struct {
	store kvstore.Store
}

func NewUserRepository(store kvstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Load returns the persisted authenticated user, or nil for anonymous
// sessions and malformed records alike.
func (r *UserRepository) Load(ctx context.Context, sessionID string) *readmodel.AuthUserRM {
	raw, err := r.store.Get(ctx, sessionKey(sessionID, recAuthUser))
	if err != nil {
		return nil
	}

	var user readmodel.AuthUserRM
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

func (r *UserRepository) Save(ctx context.Context, sessionID string, user readmodel.AuthUserRM) error {
	data, err := json.Marshal(user)
	if err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to marshal user record", err)
	}
	if err := r.store.Set(ctx, sessionKey(sessionID, recAuthUser), string(data)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to persist user record", err)
	}
	return nil
}

func (r *UserRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, sessionKey(sessionID, recAuthUser)); err != nil {
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to clear user record", err)
	}
	return nil
}
