// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth generates unguessable room identifiers.

# Room IDs

Room ids are the only access control a room has: anyone holding the id
may connect, vote, and tally. They are random 20-character base62 strings
from crypto/rand:

	id, err := auth.NewRoomID()

Client identities are not generated here; clients mint their own UUID and
present it on every connection (see handlers.Connect).
*/
package auth
