package config

// QueueKeyStruct names the Redis lists used between the API and background workers.
type QueueKeyStruct struct {
	ProfileUpdateAudit string
}

var QueueKey = &QueueKeyStruct{
	ProfileUpdateAudit: "profile_update_audit_queue",
}
