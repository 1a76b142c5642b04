package contracts

// LockerService serializes writers on an arbitrary key. Schedule create and
// update take the (instructorId, day) key across their check-then-commit
// phase so that two writers can never both pass the conflict check.
type LockerService interface {
	Lock(key string)
	Unlock(key string)
}
