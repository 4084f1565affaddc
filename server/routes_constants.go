package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login & Logout
	RouteIndex  = "/"
	RouteLogin  = "/login"
	RouteLogout = "/logout"

	// Todo Routes
	RouteTodoLists      = "/todolists"
	RouteTodoListPrefix = "/todolist/"
	RouteTodoList       = RouteTodoListPrefix + "{" + PathParamListID + "}"

	// Static Asset Route (pattern)
	RouteStaticFile = "/{file...}"
)

const PathParamListID = "listId"

// Form field names
const (
	FieldUserID      = "userId"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldListID      = "listId"
	FieldItemID      = "itemId"
	FieldObjective   = "objective"
	FieldAction      = "action"
)
