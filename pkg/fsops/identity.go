// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Unset leaves the corresponding id unchanged in Chown.
const Unset = -1

type OwnershipSpec struct {
	User     string `validate:"required,namelen"`
	Group    string `validate:"namelen"`
	HasGroup bool
	UID      int
	GID      int
}

// String returns the spec in user[:group] form.
func (o OwnershipSpec) String() string {
	if o.HasGroup {
		return o.User + ":" + o.Group
	}

	return o.User
}

// ParseOwnership splits user[:group] at the first separator. The returned spec
// has no ids resolved yet. An empty group after the separator means the group
// stays unchanged.
func ParseOwnership(spec string) (OwnershipSpec, error) {
	owner, group, _ := strings.Cut(spec, ":")
	o := OwnershipSpec{
		User:     owner,
		Group:    group,
		HasGroup: group != "",
		UID:      Unset,
		GID:      Unset,
	}

	if err := validate.Struct(o); err != nil {
		verrs := validator.ValidationErrors{}
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Tag() {
			case "required":
				return o, fmt.Errorf("%w: %q: %s name is empty", ErrInvalidOwnership, spec, strings.ToLower(verrs[0].Field()))
			case "namelen":
				return o, fmt.Errorf("%w: %q: %s name is longer than %d bytes", ErrInvalidOwnership, spec, strings.ToLower(verrs[0].Field()), MaxNameLength)
			}
		}

		return o, fmt.Errorf("%w: %q: %w", ErrInvalidOwnership, spec, err)
	}

	return o, nil
}

// IdentityDB looks up numeric ids for user and group names.
type IdentityDB interface {
	LookupUser(name string) (int, error)
	LookupGroup(name string) (int, error)
}

// SystemIdentityDB uses the host passwd and group databases.
type SystemIdentityDB struct{}

var _ IdentityDB = SystemIdentityDB{}

func (SystemIdentityDB) LookupUser(name string) (int, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return Unset, err //nolint:wrapcheck
	}

	return strconv.Atoi(u.Uid) //nolint:wrapcheck
}

func (SystemIdentityDB) LookupGroup(name string) (int, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return Unset, err //nolint:wrapcheck
	}

	return strconv.Atoi(g.Gid) //nolint:wrapcheck
}

type Resolver struct {
	DB IdentityDB
}

func NewResolver() *Resolver {
	return &Resolver{DB: SystemIdentityDB{}}
}

// Resolve parses spec and resolves the user, and the group if one was given.
// Nothing is resolved partially: on error no ids should be used.
func (r *Resolver) Resolve(spec string) (OwnershipSpec, error) {
	o, err := ParseOwnership(spec)
	if err != nil {
		return o, err
	}

	uid, err := lookupID(r.DB.LookupUser, o.User)
	if err != nil {
		return o, fmt.Errorf("%w: %s: %w", ErrUnresolvableUser, o.User, err)
	}
	o.UID = uid

	if o.HasGroup {
		gid, err := lookupID(r.DB.LookupGroup, o.Group)
		if err != nil {
			return o, fmt.Errorf("%w: %s: %w", ErrUnresolvableGroup, o.Group, err)
		}
		o.GID = gid
	}

	return o, nil
}

// lookupID resolves name and falls back to reading it as a numeric id.
func lookupID(lookup func(string) (int, error), name string) (int, error) {
	id, err := lookup(name)
	if err == nil {
		return id, nil
	}

	if n, nerr := strconv.Atoi(name); nerr == nil && n >= 0 {
		return n, nil
	}

	return Unset, err
}
