package secret_test

// Version IDs shaped like the UUIDs Secrets Manager assigns.
const (
	v1 = "a1a1a1a1-0000-4000-8000-000000000001"
	v2 = "a1a1a1a1-0000-4000-8000-000000000002"
	v3 = "a1a1a1a1-0000-4000-8000-000000000003"
	v4 = "a1a1a1a1-0000-4000-8000-000000000004"
	v5 = "a1a1a1a1-0000-4000-8000-000000000005"
	v9 = "a1a1a1a1-0000-4000-8000-000000000009"
)
