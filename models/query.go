package models

// AttributeType enum for different DynamoDB attribute types
type AttributeType int

const (
	StringType AttributeType = iota
	NumberType
	BinaryType
)

// QueryConfig holds all the configuration for any DynamoDB lookup. When
// IndexName is empty the lookup goes against the primary key, otherwise it
// queries the named global secondary index.
type QueryConfig struct {
	TableName string
	IndexName string
	KeyName   string
	KeyValue  string
	KeyType   AttributeType
}
