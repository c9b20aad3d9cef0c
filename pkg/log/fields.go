package log

// Canonical field names for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldOp        = "op"
	FieldKind      = "kind"
	FieldChannel   = "channel"

	// Navigation
	FieldRoute   = "route"
	FieldHandoff = "handoff"

	// Permissions
	FieldPlatform    = "platform"
	FieldPermissions = "permissions"
	FieldStatus      = "status"
	FieldRawStatus   = "raw_status"
)
