package service

import "github.com/google/uuid"

// Recipient computation is kept pure: every function takes a snapshot of the
// relevant graph (friend ids, participant ids) and returns a deduplicated
// recipient set, independent of the transactional write path.

// splitInitiatedRecipients returns the initiator's accepted friends minus the
// wishlist owner. Friends who cannot view the wishlist still receive the
// notification; the owner never does.
func splitInitiatedRecipients(friendIDs []uuid.UUID, ownerID, initiatorID uuid.UUID) []uuid.UUID {
	return excluding(friendIDs, ownerID, initiatorID)
}

// participantsExcept returns the participant set minus the given users,
// preserving order and dropping duplicates.
func participantsExcept(participantIDs []uuid.UUID, exclude ...uuid.UUID) []uuid.UUID {
	return excluding(participantIDs, exclude...)
}

func excluding(ids []uuid.UUID, exclude ...uuid.UUID) []uuid.UUID {
	skip := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := skip[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
