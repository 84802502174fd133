package schema

const ClientEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "partstore",
	"name": "client_event",
	"fields": [
		{"name": "kind", "type": "string"},
		{"name": "session_id", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "product_name", "type": "string"},
		{"name": "brand", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "query", "type": "string"},
		{"name": "unix_time", "type": "long"}
	]
}`

type ClientEventV1 struct {
	Kind        string  `avro:"kind"`
	SessionID   string  `avro:"session_id"`
	ProductID   int     `avro:"product_id"`
	ProductName string  `avro:"product_name"`
	Brand       string  `avro:"brand"`
	Price       float64 `avro:"price"`
	Query       string  `avro:"query"`
	UnixTime    int64   `avro:"unix_time"`
}
