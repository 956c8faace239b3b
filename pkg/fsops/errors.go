// Copyright 2024 Hedgehog
// SPDX-License-Identifier: Apache-2.0

package fsops

import "fmt"

var (
	ErrOperands         = fmt.Errorf("invalid operands")
	ErrInvalidOwnership = fmt.Errorf("invalid ownership spec")
	ErrNotDirectory     = fmt.Errorf("not a directory")

	ErrUnresolvableUser  = fmt.Errorf("could not resolve user name")
	ErrUnresolvableGroup = fmt.Errorf("could not resolve group name")

	ErrDeclined    = fmt.Errorf("overwrite declined")
	ErrCrossDevice = fmt.Errorf("cannot move across filesystems")

	ErrTraversal       = fmt.Errorf("cannot traverse")
	ErrTooManyOpenDirs = fmt.Errorf("too many open directories")

	ErrPartialFailure = fmt.Errorf("some operations failed")
)
