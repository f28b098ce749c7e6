package sync

import (
	"context"
	"errors"
	"fmt"
	"log"

	"remiks.GO/model/product"
)

// Remote is the platform ingestion client. Authenticate exchanges the
// configured credentials for a bearer token; Submit posts a payload and
// returns any per-record service errors from an otherwise successful
// response.
type Remote interface {
	Authenticate(ctx context.Context) (string, error)
	Submit(ctx context.Context, ch Channel, payload []byte, token string) ([]string, error)
}

// Archiver persists payload files before submission and appends to the
// error log.
type Archiver interface {
	SavePayload(prefix string, data []byte) (string, error)
	LogErrors(errs []string) error
}

// ErrNoRows is returned when the source yields nothing. The run aborts
// before authentication, so an empty spreadsheet never touches the remote.
var ErrNoRows = errors.New("sync: source produced no rows")

// RunResult summarizes a completed sync run.
type RunResult struct {
	Products      int
	PayloadPath   string
	ServiceErrors []string
	Warnings      []string
}

// Service wires the assembly pipeline to its collaborators and runs the
// sync operations end to end.
type Service struct {
	Remote   Remote
	Archiver Archiver
}

func NewService(remote Remote, archiver Archiver) *Service {
	return &Service{Remote: remote, Archiver: archiver}
}

// RunProductSync assembles product records from the rows, archives the
// payload and submits it. The archive write happens before any remote
// call; a failed archive is a warning, a failed authentication or submit
// aborts the run.
func (s *Service) RunProductSync(ctx context.Context, rows []Row, opts AssembleOptions) (*RunResult, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	records := Assemble(rows, opts)
	payload, err := MarshalProducts(records, opts.Channel)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	result := &RunResult{Products: len(records)}
	s.archive(result, opts.Channel.ArchivePrefix(), payload)

	if err := s.submit(ctx, result, opts.Channel, payload); err != nil {
		return nil, err
	}
	return result, nil
}

// RunStockSync builds stock-only records from the rows and submits them
// to the stock endpoint.
func (s *Service) RunStockSync(ctx context.Context, rows []Row) (*RunResult, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	records := BuildStockRecords(rows)
	payload, err := MarshalStock(records)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	result := &RunResult{Products: len(records)}
	s.archive(result, ChannelStock.ArchivePrefix(), payload)

	if err := s.submit(ctx, result, ChannelStock, payload); err != nil {
		return nil, err
	}
	return result, nil
}

// RunStockUpdate refreshes quantities for SKUs known from an earlier
// product payload. Rows for unknown SKUs are skipped and reported as
// warnings.
func (s *Service) RunStockUpdate(ctx context.Context, rows []Row, prior []product.Record, defaultWarehouse string) (*RunResult, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	records, missing := MergeStockRows(rows, prior, defaultWarehouse)
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	payload, err := MarshalStock(records)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	result := &RunResult{Products: len(records)}
	for _, sku := range missing {
		result.Warnings = append(result.Warnings, fmt.Sprintf("sku %s not in archived payload, skipped", sku))
	}
	s.archive(result, "stock_update", payload)

	if err := s.submit(ctx, result, ChannelStock, payload); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) archive(result *RunResult, prefix string, payload []byte) {
	path, err := s.Archiver.SavePayload(prefix, payload)
	if err != nil {
		warn := fmt.Sprintf("archive payload: %v", err)
		log.Println(warn)
		result.Warnings = append(result.Warnings, warn)
		return
	}
	result.PayloadPath = path
}

func (s *Service) submit(ctx context.Context, result *RunResult, ch Channel, payload []byte) error {
	token, err := s.Remote.Authenticate(ctx)
	if err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	serviceErrs, err := s.Remote.Submit(ctx, ch, payload, token)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if len(serviceErrs) > 0 {
		log.Printf("submit accepted with %d service errors", len(serviceErrs))
		if err := s.Archiver.LogErrors(serviceErrs); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("write error log: %v", err))
		}
		result.ServiceErrors = serviceErrs
	}
	return nil
}
