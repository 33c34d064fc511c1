// Package config loads the yt-tui configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/yt-tui/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults
//
// # Default Values
//
//   - ytdlp_path: yt-dlp (looked up on PATH)
//   - output_dir: ~/Downloads
//   - output_template: %(title)s [%(id)s].%(ext)s
//   - log_file: ~/.local/state/yt-tui/yt-tui.log
//   - theme: Nightfox
//   - tick_ms: 100
//   - channel_capacity: 32
//
// # TOML Format
//
// Example config.toml:
//
//	ytdlp_path = "~/.local/bin/yt-dlp"
//	output_dir = "~/Videos/youtube"
//	output_template = "%(uploader)s - %(title)s.%(ext)s"
//	log_file = ""
//	theme = "Kanagawa"
//
// All fields are optional. Setting log_file to an empty string discards log
// output instead of writing the default file.
//
// # Path Expansion
//
// Values are whitespace-trimmed. The config path, output_dir and log_file
// are tilde-expanded and made absolute. ytdlp_path is only expanded when it
// looks like a path; a bare command name is left for PATH lookup.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors, prefixed with "parse config"
package config
