package constants

import "os"

// DefaultFretCount matches the UI's default grid.
const DefaultFretCount = 22

func GetListenAddr() string {
	addr := os.Getenv("LISTEN_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// GetConfigTable names the DynamoDB table for shared configs. Empty
// means the server keeps configs in memory only.
func GetConfigTable() string {
	return os.Getenv("CONFIG_TABLE")
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoRegion() string {
	region := os.Getenv("DYNAMO_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}
