// Package database manages the connection to the run journal database.
//
// MySQL is used in deployments; SQLite is accepted for local runs and tests.
// The connection is optional: when database.enabled is false nothing is opened
// and runs are not journaled.
package database
