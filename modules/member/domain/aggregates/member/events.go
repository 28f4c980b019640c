package member

type CreatedEvent struct {
	Result Member
}

type UpdatedEvent struct {
	Result Member
}
