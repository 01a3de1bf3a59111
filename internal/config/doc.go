// Package config loads the SpaceX Explorer configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/spacex-explorer/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//  5. SPACEX_API_URL and SPACEX_DB_PATH, when set, win over the file
//
// # Default Values
//
//   - API base URL: https://api.spacexdata.com/v4/
//   - Cache database: ~/.local/share/spacex-explorer/cache.db
//   - Log file: ~/.local/share/spacex-explorer/spacex.log
//   - Log level: info
//   - Request timeout: 10 seconds
//   - Background refresh: every 15 minutes
//
// # TOML Format
//
//	api_base_url = "https://api.spacexdata.com/v4/"
//	db_path = "~/.local/share/spacex-explorer/cache.db"
//	log_path = "~/.local/share/spacex-explorer/spacex.log"
//	log_level = "debug"
//	request_timeout_seconds = 10
//	poll_minutes = 15
//
// Every field is optional. Tilde expansion is performed on paths, and
// poll_minutes = 0 disables background refresh.
package config
