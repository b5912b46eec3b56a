package application

import "github.com/oksasatya/recetario-api/internal/domain/entity"

// ownerRef lets a bare id be checked before the resource is loaded.
type ownerRef string

func (o ownerRef) OwnerID() string { return string(o) }

// authorizeOwner permits an operation iff callerID owns res.
func authorizeOwner(callerID string, res entity.Owned) error {
	if callerID == "" || res == nil || res.OwnerID() != callerID {
		return ErrForbidden
	}
	return nil
}
