package response

const (
	MessageSuccess = "Success"
	MessageCreated = "Created"
	MessageDeleted = "Deleted"
)
