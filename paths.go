package users_api

// Route paths served by the API.
const (
	PathRoot   = "/"
	PathHealth = "/api/health"
	PathUsers  = "/api/users"
)
