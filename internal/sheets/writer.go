package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joshsymonds/hoard/internal/aggregate"
	"github.com/joshsymonds/hoard/internal/common"
	"github.com/joshsymonds/hoard/internal/model"
	"github.com/joshsymonds/hoard/internal/service"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Report bundles everything the exporter writes: the computed net-worth
// series, the account breakdown, and the property portfolio.
type Report struct {
	Series     aggregate.Series
	Breakdown  *aggregate.Breakdown
	Properties []model.Property
	Portfolio  aggregate.PortfolioMetrics
}

// Writer exports portfolio reports to Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Write exports the report, replacing the sheet's previous contents.
func (w *Writer) Write(ctx context.Context, report *Report) error {
	w.logger.Info("starting report export",
		"series_points", len(report.Series),
		"properties", len(report.Properties))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := w.prepareReportData(report)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	w.logger.Info("report export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// getOrCreateSpreadsheet gets an existing spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: "Net Worth",
				},
			},
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// clearSheet clears all data from the sheet.
func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// prepareReportData lays the report out as one column-block per section.
func (w *Writer) prepareReportData(report *Report) [][]any {
	growth := aggregate.SeriesGrowth(report.Series)
	latest := report.Series.Latest()

	estimatedRows := 16 + len(report.Series) + len(report.Breakdown.Order) + len(report.Properties)
	values := make([][]any, 0, estimatedRows)

	values = append(values,
		[]any{"Net Worth Report", time.Now().Format("Jan 2, 2006")},
		[]any{},
		[]any{"Summary"},
		[]any{"Current Net Worth", money(latest.NetWorth)},
		[]any{"Change Since Last Snapshot", money(growth.Absolute), fmt.Sprintf("%.2f%%", growth.Percent)},
		[]any{},
		[]any{"Net Worth History"},
		[]any{"Date", "Net Worth", "Assets", "Liabilities"},
	)

	for _, row := range netWorthRows(report.Series) {
		values = append(values, []any{
			row.Date.Format("2006-01-02"),
			row.NetWorth.StringFixed(2),
			row.Assets.StringFixed(2),
			row.Liabilities.StringFixed(2),
		})
	}

	values = append(values,
		[]any{},
		[]any{"Accounts"},
		[]any{"Category", "Name", "Institution", "Balance"},
	)
	for _, category := range report.Breakdown.Order {
		group := report.Breakdown.Groups[category]
		for _, row := range accountRows(category, group.Items) {
			values = append(values, []any{
				row.Category, row.Name, row.Institution, row.Amount.StringFixed(2),
			})
		}
		values = append(values, []any{
			string(category) + " subtotal", "", "", money(group.Subtotal),
		})
	}

	values = append(values,
		[]any{},
		[]any{"Properties"},
		[]any{"Address", "Type", "Value", "Equity", "NOI", "Cap Rate"},
	)
	for _, row := range propertyRows(report.Properties) {
		values = append(values, []any{
			row.Address, row.Type,
			row.Value.StringFixed(2), row.Equity.StringFixed(2),
			row.NOI.StringFixed(2), row.CapRate.StringFixed(2) + "%",
		})
	}
	values = append(values, []any{
		"Portfolio", "",
		money(report.Portfolio.TotalValue), money(report.Portfolio.TotalEquity),
		money(report.Portfolio.TotalNOI),
		fmt.Sprintf("%.2f%%", report.Portfolio.AverageCapRate),
	})

	return values
}

// writeData writes in batches to avoid API limits.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	for i := 0; i < len(values); i += w.config.BatchSize {
		end := i + w.config.BatchSize
		if end > len(values) {
			end = len(values)
		}

		batch := values[i:end]
		valueRange := &sheets.ValueRange{
			Values: batch,
		}

		rangeStr := fmt.Sprintf("A%d", i+1)
		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeStr, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		w.logger.Debug("wrote batch", "start_row", i+1, "rows", len(batch))
	}

	return nil
}

func money(f float64) string {
	return decimal.NewFromFloat(f).StringFixed(2)
}

func netWorthRows(series aggregate.Series) []NetWorthRow {
	rows := make([]NetWorthRow, 0, len(series))
	for _, p := range series {
		rows = append(rows, NetWorthRow{
			Date:        p.Date,
			NetWorth:    decimal.NewFromFloat(p.NetWorth),
			Assets:      decimal.NewFromFloat(p.AssetTotal),
			Liabilities: decimal.NewFromFloat(p.LiabilityTotal),
		})
	}
	return rows
}

func accountRows(category model.Category, accounts []model.Account) []AccountRow {
	rows := make([]AccountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, AccountRow{
			Name:        a.Name,
			Category:    string(category),
			Institution: a.Institution,
			Amount:      decimal.NewFromFloat(a.Amount),
		})
	}
	return rows
}

func propertyRows(properties []model.Property) []PropertyRow {
	rows := make([]PropertyRow, 0, len(properties))
	for i := range properties {
		p := &properties[i]
		m := aggregate.ComputePropertyMetrics(p)
		rows = append(rows, PropertyRow{
			Address: p.Address,
			Type:    string(p.Type),
			Value:   decimal.NewFromFloat(p.Value),
			Equity:  decimal.NewFromFloat(m.Equity),
			NOI:     decimal.NewFromFloat(m.NOI),
			CapRate: decimal.NewFromFloat(m.CapRate),
		})
	}
	return rows
}
