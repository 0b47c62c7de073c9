// Package config provides configuration management for label-sync.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Nested keys map to upper-case variables with dots replaced
// by underscores, which makes the GitHub Actions environment usable as-is:
// GITHUB_TOKEN, GITHUB_REPOSITORY, GITHUB_API_URL, GITHUB_WORKSPACE and the
// action input INPUT_DELETE.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - GitHub: token, repository, API URL, workspace, retry settings
//   - Input: the delete gate
//   - Labels: manifest source (file or storage), path, object name
//   - Storage: S3/MinIO credentials and bucket settings
//   - Database: run journal connection
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.GitHub.Repository)
package config
