package schema

// schema is valid for both mysql and sqlite.
const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	storage_key VARCHAR(255) NOT NULL PRIMARY KEY,
	storage_value LONGTEXT NOT NULL
)`

const dropSchema = `DROP TABLE IF EXISTS kv_store`
