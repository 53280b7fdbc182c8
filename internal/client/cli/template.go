package cli

const detailsTemplate = `
=== {{.Kind}} Details ===

Name:      {{.Name}}
ID:        {{.ID}}
{{- if .Parent }}
Parent:    {{.Parent}}
{{- end}}
Count:     {{.Count}}
Time:      {{.Time}}
Hunt type: {{.HuntType}}
Charm:     {{if .HasCharm}}yes{{else}}no{{end}}
Rolls:     {{.Rolls}}
Odds:      {{.Odds}}
Progress:  {{.Progress}}
Completed: {{.Completed}}
{{- if .Archived }}
Archived:  yes
{{- end}}
Created:   {{.CreatedAt}}
Last edit: {{.LastEdit}}
{{- if .Children }}

Children:
{{- range .Children }}
  {{.}}
{{- end}}
{{- end}}
`

const usageTemplate = `
Tally Client

Usage:
  tally [OPTIONS] COMMAND

Environment:
  TALLY_DB         Path to the local cache (default: tally.db)
  TALLY_SERVER_DB  Path to the server database (default: tally-server.db)
  TALLY_OWNER      Owner id of the tree (default: saved in the local cache)
  TALLY_LOG_LEVEL  debug, info, warn or error (default: warn)

Examples:
  tally new counter "Shiny Charizard"
  tally new phase "Phase 2" --parent 1a2b3c4d
  tally count 5e6f7a8b 3
  tally count 1a2b3c4d --set 120
  tally time 5e6f7a8b 15m
  tally hunttype 1a2b3c4d SOS
  tally list --all
  tally list --sort count -r --search char
  tally export backup.json
  tally sync
`
