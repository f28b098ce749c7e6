package sync

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"remiks.GO/api"
	"remiks.GO/config"
	syncService "remiks.GO/service/sync"
)

func init() {
	api.RegisterModule(RegisterSyncRoutes)
}

// RegisterSyncRoutes exposes the assembly pipeline over HTTP. The
// endpoints classify and price the posted rows and return the payload
// that a sync run would submit, without touching the remote platform.
func RegisterSyncRoutes(apiGroup *echo.Group) {
	g := apiGroup.Group("/sync")

	// POST /api/sync/products – assemble product rows into a payload preview
	g.POST("/products", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Rows    []syncService.Row `json:"rows"`
			Channel string            `json:"channel"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Rows) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows array is required and must not be empty"})
		}
		ch := syncService.Channel(body.Channel)
		if ch == "" {
			ch = syncService.ChannelExcel
		}

		records := syncService.Assemble(body.Rows, syncService.AssembleOptions{
			Channel:          ch,
			DefaultWarehouse: config.AppConfig.DefaultWarehouse,
		})
		payload, err := syncService.MarshalProducts(records, ch)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"products":            len(records),
			"channel":             string(ch),
			"payload":             json.RawMessage(payload),
			"request_duration_ms": duration,
		})
	})

	// POST /api/sync/stock – build a stock payload preview
	g.POST("/stock", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Rows []syncService.Row `json:"rows"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Rows) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows array is required and must not be empty"})
		}

		records := syncService.BuildStockRecords(body.Rows)
		payload, err := syncService.MarshalStock(records)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"records":             len(records),
			"payload":             json.RawMessage(payload),
			"request_duration_ms": duration,
		})
	})
}
