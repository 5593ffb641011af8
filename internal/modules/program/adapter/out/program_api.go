package out

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"uniplan/internal/modules/program/domain"
	programout "uniplan/internal/modules/program/port/out"
	"uniplan/internal/platform/httpx"
)

type HTTPProgramAPI struct {
	client *httpx.Client
}

func NewHTTPProgramAPI(client *httpx.Client) programout.ProgramAPI {
	return &HTTPProgramAPI{client: client}
}

type programRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	LevelLabel string `json:"level_label"`
}

func (a *HTTPProgramAPI) Search(ctx context.Context, level, query string) ([]domain.Program, error) {
	params := url.Values{}
	if level != "" {
		params.Set("level", level)
	}
	if query != "" {
		params.Set("search", query)
	}
	var records []programRecord
	if err := a.client.Get(ctx, "catalog/programs/", params, &records); err != nil {
		return nil, fmt.Errorf("search programs: %w", err)
	}
	programs := make([]domain.Program, len(records))
	for idx, record := range records {
		programs[idx] = domain.Program{
			ID:    record.ID,
			Value: strconv.FormatInt(record.ID, 10),
			Label: fmt.Sprintf("%s (%s)", record.Name, record.LevelLabel),
		}
	}
	return programs, nil
}
