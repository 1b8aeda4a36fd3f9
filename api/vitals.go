package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"

	"github.com/carelink/vitals/errors"
	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/vitals"
)

type GetBaselineSummaryParams struct {
	UserId string `form:"userId" json:"userId"`
}

type GetInsightsParams struct {
	UserId string  `form:"userId" json:"userId"`
	Range  *string `form:"range,omitempty" json:"range,omitempty"`
}

type IngestVitalsRequest struct {
	UserId    string `json:"userId"`
	BpSys     *int64 `json:"bpSys"`
	BpDia     *int64 `json:"bpDia"`
	Glucose   *int64 `json:"glucose"`
	IsFasting *bool  `json:"isFasting"`

	HeartRate      *int64   `json:"heartRate"`
	EcgRiskScore   *float64 `json:"ecgRiskScore"`
	EcgAbnormal    *bool    `json:"ecgAbnormal"`
	EcgAnomalyType *string  `json:"ecgAnomalyType"`
}

func (r IngestVitalsRequest) Validate() error {
	if strings.TrimSpace(r.UserId) == "" {
		return fmt.Errorf("%w: userId is required", errors.BadRequest)
	}
	if r.EcgRiskScore != nil && (*r.EcgRiskScore < 0 || *r.EcgRiskScore > 1) {
		return fmt.Errorf("%w: ecgRiskScore must be between 0 and 1", errors.BadRequest)
	}
	return nil
}

func (r IngestVitalsRequest) Readings() vitals.Readings {
	return vitals.Readings{
		BpSys:          r.BpSys,
		BpDia:          r.BpDia,
		Glucose:        r.Glucose,
		IsFasting:      r.IsFasting,
		HeartRate:      r.HeartRate,
		EcgRiskScore:   r.EcgRiskScore,
		EcgAbnormal:    r.EcgAbnormal,
		EcgAnomalyType: r.EcgAnomalyType,
	}
}

func (h *Handler) IngestVitals(ec echo.Context) error {
	ctx := ec.Request().Context()

	request := IngestVitalsRequest{}
	if err := ec.Bind(&request); err != nil {
		return err
	}
	if err := request.Validate(); err != nil {
		return err
	}

	measurement, err := h.vitals.Ingest(ctx, request.UserId, request.Readings())
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, measurement)
}

func (h *Handler) GetBaselineSummary(ec echo.Context) error {
	ctx := ec.Request().Context()

	var params GetBaselineSummaryParams
	if err := bindUserId(ec, &params.UserId); err != nil {
		return err
	}

	summary, err := h.vitals.GetBaselineSummary(ctx, params.UserId)
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, summary)
}

func (h *Handler) GetInsights(ec echo.Context) error {
	ctx := ec.Request().Context()

	var params GetInsightsParams
	if err := bindUserId(ec, &params.UserId); err != nil {
		return err
	}
	if err := runtime.BindQueryParameter("form", true, false, "range", ec.QueryParams(), &params.Range); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter range: %s", err))
	}

	series, err := h.vitals.GetInsights(ctx, params.UserId, pointer.ToString(params.Range))
	if err != nil {
		return err
	}

	return ec.JSON(http.StatusOK, series)
}

func bindUserId(ec echo.Context, dest *string) error {
	if err := runtime.BindQueryParameter("form", true, true, "userId", ec.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}
	if strings.TrimSpace(*dest) == "" {
		return fmt.Errorf("%w: userId is required", errors.BadRequest)
	}
	return nil
}
