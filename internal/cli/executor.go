package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// ExecutorOptions contains options for tool execution
type ExecutorOptions struct {
	Format OutputFormat
	Quiet  bool
	// Copy places the raw JSON result on the system clipboard.
	Copy bool
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Mockable for tests; headless CI has no clipboard.
var clipboardWriteAll = clipboard.WriteAll

// ToolExecutor runs tools through a CLIClient and renders their results.
type ToolExecutor struct {
	client  *CLIClient
	options ExecutorOptions
	out     io.Writer
}

// NewToolExecutor creates a new tool executor
func NewToolExecutor(client *CLIClient, options ExecutorOptions) *ToolExecutor {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &ToolExecutor{
		client:  client,
		options: options,
		out:     out,
	}
}

// Connect establishes the client connection.
func (e *ToolExecutor) Connect(ctx context.Context) error {
	return e.client.Connect(ctx)
}

// Close closes the connection
func (e *ToolExecutor) Close() error {
	return e.client.Close()
}

// Execute executes a tool and formats the output
func (e *ToolExecutor) Execute(ctx context.Context, toolName string, arguments map[string]interface{}) error {
	result, err := e.client.CallTool(ctx, toolName, arguments)
	if err != nil {
		return err
	}

	if result.IsError {
		return e.formatError(result)
	}

	return e.formatOutput(result)
}

func (e *ToolExecutor) formatError(result *mcp.CallToolResult) error {
	return fmt.Errorf("%s", strings.Join(textContents(result), "\n"))
}

// formatOutput formats the tool output according to the specified format
func (e *ToolExecutor) formatOutput(result *mcp.CallToolResult) error {
	texts := textContents(result)
	if len(texts) == 0 {
		if !e.options.Quiet {
			fmt.Fprintln(e.out, "No results")
		}
		return nil
	}
	raw := texts[0]

	if e.options.Copy {
		if err := clipboardWriteAll(raw); err != nil {
			return fmt.Errorf("failed to copy result to clipboard: %w", err)
		}
	}

	switch e.options.Format {
	case OutputFormatJSON:
		fmt.Fprintln(e.out, raw)
		return nil
	case OutputFormatYAML:
		return e.outputYAML(raw)
	case OutputFormatTable:
		return e.outputTable(raw)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

// outputYAML converts JSON to YAML and prints it
func (e *ToolExecutor) outputYAML(jsonData string) error {
	return writeYAML(e.out, jsonData)
}

func writeYAML(w io.Writer, jsonData string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}

	_, err = w.Write(yamlData)
	return err
}

// outputTable renders Atlas list envelopes and arrays as tables and single
// resources as property/value tables.
func (e *ToolExecutor) outputTable(jsonData string) error {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		fmt.Fprintln(e.out, jsonData)
		return nil
	}

	switch d := data.(type) {
	case map[string]interface{}:
		return e.formatTableFromObject(d)
	case []interface{}:
		return e.formatTableFromArray(d)
	default:
		fmt.Fprintln(e.out, jsonData)
		return nil
	}
}

func (e *ToolExecutor) formatTableFromObject(data map[string]interface{}) error {
	arrayKey := findArrayKey(data)
	if arrayKey != "" {
		arr := data[arrayKey].([]interface{})
		if err := e.formatTableFromArray(arr); err != nil {
			return err
		}
		if total, ok := data["totalCount"]; ok {
			fmt.Fprintf(e.out, "\n%s %v\n",
				text.FgHiBlue.Sprint("Total:"),
				text.FgHiWhite.Sprint(total))
		}
		return nil
	}

	return e.formatKeyValueTable(data)
}

// findArrayKey returns the key holding the page of items in a list envelope.
func findArrayKey(data map[string]interface{}) string {
	for _, key := range []string{"results", "items"} {
		if value, exists := data[key]; exists {
			if _, isArray := value.([]interface{}); isArray {
				return key
			}
		}
	}
	return ""
}

func (e *ToolExecutor) formatTableFromArray(data []interface{}) error {
	if len(data) == 0 {
		fmt.Fprintln(e.out, text.FgYellow.Sprint("No items found"))
		return nil
	}

	firstObj, ok := data[0].(map[string]interface{})
	if !ok {
		return e.formatSimpleList(data)
	}

	columns := optimizeColumns(firstObj)

	t := table.NewWriter()
	t.SetOutputMirror(e.out)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, item := range data {
		if itemMap, ok := item.(map[string]interface{}); ok {
			row := make(table.Row, len(columns))
			for i, col := range columns {
				row[i] = formatCellValue(col, itemMap[col])
			}
			t.AppendRow(row)
		}
	}

	t.Render()
	return nil
}

// priorityColumns lists the columns worth showing per Atlas resource kind.
var priorityColumns = map[string][]string{
	"clusters":    {"name", "stateName", "clusterType", "mongoDBVersion", "diskSizeGB"},
	"users":       {"username", "databaseName", "roles"},
	"projects":    {"id", "name", "orgId", "clusterCount", "created"},
	"alerts":      {"id", "eventTypeName", "status", "created"},
	"events":      {"id", "eventTypeName", "created"},
	"accessList":  {"ipAddress", "cidrBlock", "awsSecurityGroup", "comment"},
	"searchIndex": {"indexID", "name", "database", "collectionName", "status"},
	"dataLakes":   {"name", "state", "hostnames"},
	"snapshots":   {"id", "status", "snapshotType", "createdAt"},
}

// hiddenColumns never make a useful cell.
var hiddenColumns = map[string]bool{"links": true}

const maxColumns = 6

func optimizeColumns(sample map[string]interface{}) []string {
	var allKeys []string
	for key := range sample {
		if !hiddenColumns[key] {
			allKeys = append(allKeys, key)
		}
	}
	sort.Strings(allKeys)

	priorities, exists := priorityColumns[detectResourceType(sample)]
	if !exists {
		if len(allKeys) > 5 {
			return allKeys[:5]
		}
		return allKeys
	}

	var columns []string
	used := make(map[string]bool)
	for _, col := range priorities {
		if _, ok := sample[col]; ok {
			columns = append(columns, col)
			used[col] = true
		}
	}
	for _, key := range allKeys {
		if len(columns) >= maxColumns {
			break
		}
		if !used[key] {
			columns = append(columns, key)
		}
	}
	return columns
}

// detectResourceType guesses the Atlas resource kind from distinctive fields.
func detectResourceType(sample map[string]interface{}) string {
	has := func(key string) bool {
		_, ok := sample[key]
		return ok
	}
	switch {
	case has("stateName") && has("clusterType"):
		return "clusters"
	case has("username") && has("databaseName"):
		return "users"
	case has("clusterCount") || (has("orgId") && has("name") && has("id")):
		return "projects"
	case has("eventTypeName") && has("status"):
		return "alerts"
	case has("eventTypeName"):
		return "events"
	case has("ipAddress") || has("cidrBlock") || has("awsSecurityGroup"):
		return "accessList"
	case has("indexID") || has("collectionName"):
		return "searchIndex"
	case has("hostnames") || has("storage"):
		return "dataLakes"
	case has("snapshotType"):
		return "snapshots"
	}
	return "generic"
}

func formatCellValue(column string, value interface{}) interface{} {
	if value == nil {
		return text.FgHiBlack.Sprint("-")
	}

	switch strings.ToLower(column) {
	case "statename", "status", "state":
		return formatState(fmt.Sprintf("%v", value))
	case "roles":
		return formatRoles(value)
	case "description", "comment":
		return truncate(fmt.Sprintf("%v", value), 50)
	case "clustertype", "snapshottype", "eventtypename":
		return text.FgCyan.Sprint(value)
	}

	switch v := value.(type) {
	case map[string]interface{}:
		return text.FgHiBlack.Sprintf("{%d fields}", len(v))
	case []interface{}:
		return text.FgHiBlack.Sprintf("[%d items]", len(v))
	case float64:
		return fmt.Sprintf("%v", v)
	}
	return truncate(fmt.Sprintf("%v", value), 30)
}

// formatState colours Atlas lifecycle and alert states.
func formatState(state string) interface{} {
	switch strings.ToUpper(state) {
	case "IDLE", "ACTIVE", "CLOSED", "COMPLETED", "READY", "STEADY":
		return text.FgGreen.Sprint(state)
	case "CREATING", "UPDATING", "REPAIRING", "QUEUED", "INPROGRESS", "IN_PROGRESS", "PENDING", "TRACKING", "BUILDING":
		return text.FgYellow.Sprint(state)
	case "DELETING", "DELETED", "OPEN", "FAILED", "CANCELLED":
		return text.FgRed.Sprint(state)
	default:
		return state
	}
}

// formatRoles renders database user roles as role@db.
func formatRoles(value interface{}) interface{} {
	roles, ok := value.([]interface{})
	if !ok {
		return fmt.Sprintf("%v", value)
	}
	if len(roles) == 0 {
		return text.FgHiBlack.Sprint("none")
	}

	var names []string
	for _, r := range roles {
		m, ok := r.(map[string]interface{})
		if !ok {
			continue
		}
		name := fmt.Sprintf("%v", m["roleName"])
		if db, ok := m["databaseName"]; ok {
			name += "@" + fmt.Sprintf("%v", db)
		}
		names = append(names, name)
	}

	if len(names) <= 2 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s, %s (+%d more)", names[0], names[1], len(names)-2)
}

// truncate shortens s to the given display width, counting wide runes as two cells.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

func (e *ToolExecutor) formatKeyValueTable(data map[string]interface{}) error {
	t := table.NewWriter()
	t.SetOutputMirror(e.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})

	var keys []string
	for key := range data {
		if !hiddenColumns[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		t.AppendRow(table.Row{
			text.FgYellow.Sprint(key),
			formatCellValue(key, data[key]),
		})
	}

	t.Render()
	return nil
}

func (e *ToolExecutor) formatSimpleList(data []interface{}) error {
	for _, item := range data {
		fmt.Fprintln(e.out, item)
	}
	return nil
}
