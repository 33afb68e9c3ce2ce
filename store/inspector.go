// Copyright 2025 Halcyon Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	opensearchgo "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchapi"
)

// IndexInfo describes one index: its name, settings, and field mappings.
// Settings and Mappings are kept as raw JSON; the inspector reports them,
// it does not interpret them.
type IndexInfo struct {
	Name     string
	Settings json.RawMessage
	Mappings json.RawMessage
}

// Inspector lists index metadata from a search cluster. It never mutates
// anything.
type Inspector struct {
	client *opensearchgo.Client
}

// NewInspector creates an inspector over the given client.
func NewInspector(client *opensearchgo.Client) *Inspector {
	return &Inspector{client: client}
}

// Indices returns metadata for every index, sorted by name.
func (i *Inspector) Indices(ctx context.Context) ([]IndexInfo, error) {
	req := opensearchapi.IndicesGetRequest{Index: []string{"*"}}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return nil, fmt.Errorf("get indices: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("get indices: %s", res.String())
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read indices response: %w", err)
	}

	return parseIndices(body)
}

// Write renders every index's metadata to w in a human-readable form.
func (i *Inspector) Write(ctx context.Context, w io.Writer) error {
	infos, err := i.Indices(ctx)
	if err != nil {
		return err
	}

	for _, info := range infos {
		fmt.Fprintf(w, "Index: %s\n", info.Name)
		fmt.Fprintf(w, "Settings: %s\n", info.Settings)
		fmt.Fprintf(w, "Mappings: %s\n", info.Mappings)
		fmt.Fprintln(w)
	}
	return nil
}

// parseIndices decodes the indices-get response body.
func parseIndices(body []byte) ([]IndexInfo, error) {
	var raw map[string]struct {
		Settings json.RawMessage `json:"settings"`
		Mappings json.RawMessage `json:"mappings"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode indices response: %w", err)
	}

	infos := make([]IndexInfo, 0, len(raw))
	for name, detail := range raw {
		infos = append(infos, IndexInfo{
			Name:     name,
			Settings: detail.Settings,
			Mappings: detail.Mappings,
		})
	}
	sort.Slice(infos, func(a, b int) bool { return infos[a].Name < infos[b].Name })

	return infos, nil
}
