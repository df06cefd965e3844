package output

import (
	"sort"
	"strings"

	"github.com/agentstation/providerkeys/pkg/providers"
)

const none = "-"

// ProvidersTable converts catalog providers to table data.
// Wide output adds the description column.
func ProvidersTable(list []providers.Provider, wide bool) Data {
	headers := []string{"ID", Header("name"), Header("models"), Header("required_keys")}
	if wide {
		headers = append(headers, Header("description"))
	}

	rows := make([][]string, 0, len(list))
	for _, p := range list {
		row := []string{p.ID, p.Name, joinOrNone(p.Models), joinOrNone(p.RequiredKeys)}
		if wide {
			row = append(row, p.Description)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// SecretsTable converts secrets status to one row per provider key,
// ordered by provider id and key name.
func SecretsTable(status providers.SecretsStatus) Data {
	ids := make([]string, 0, len(status))
	for id := range status {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var rows [][]string
	for _, id := range ids {
		resp := status[id]
		if len(resp.SecretStatus) == 0 {
			rows = append(rows, []string{id, resp.DisplayName(), none, none})
			continue
		}

		keys := make([]string, 0, len(resp.SecretStatus))
		for key := range resp.SecretStatus {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			rows = append(rows, []string{id, resp.DisplayName(), key, yesNo(resp.SecretStatus[key].IsSet)})
		}
	}

	return Data{
		Headers:         []string{"Provider", Header("name"), Header("key"), Header("set")},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignCenter},
	}
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return none
	}
	return strings.Join(values, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
