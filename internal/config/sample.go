package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# casechart configuration
version: "1.0"

input:
  # Case data read when no file argument is given
  path: "data4.txt"
  # Longest accepted input line in bytes
  max_line_length: 1048576

playback:
  # tui (interactive) or plain (redraw on stdout)
  mode: "tui"
  # How long each date stays on screen
  frame_delay: 100ms
  # Size of the terminal chart in cells
  columns: 140
  rows: 45
  # Keep the last frame up until you quit
  hold_last_frame: true

output:
  # Summary format: text, json, csv or markdown
  default_format: "text"
  # auto, always or never
  color_mode: "auto"
  verbose: false

export:
  # Where casechart export writes PNG frames
  directory: "frames"
  prefix: "frame"
`
}

// MinimalSampleConfig returns a compact configuration with the common settings
func MinimalSampleConfig() string {
	return `version: "1.0"
input:
  path: "data4.txt"
playback:
  mode: "tui"
  frame_delay: 100ms
output:
  default_format: "text"
`
}
