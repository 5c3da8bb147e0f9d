// Package api serves the editor bridge: the JSON and YAML endpoints the
// editor UI calls to load and replace the draft, read its validation issues,
// preview the generated configuration, export or copy it, and run the host
// diagnostic command.
//
//	GET  /api/document     draft as YAML
//	PUT  /api/document     replace the draft (YAML or JSON body)
//	GET  /api/issues       validation issues, ?group=N narrows to one group
//	GET  /api/preview      generated configuration, 422 while invalid
//	POST /api/export       save the generated configuration
//	POST /api/copy         copy the generated configuration to the clipboard
//	POST /api/diagnostics  run the diagnostic command
package api
