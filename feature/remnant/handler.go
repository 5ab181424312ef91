package remnant

import (
	"errors"
	"strconv"

	"apo-analyzer/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for remnant analysis.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the remnant routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/remnant")
	group.Post("/analyze", h.HandleAnalyze)
	group.Get("/sites", h.HandleSites)
	group.Post("/uploads", h.HandleUpload)
	group.Get("/uploads", h.HandleListUploads)
	group.Delete("/uploads/:id", h.HandleDeleteUpload)
	group.Post("/uploads/:id/analyze", h.HandleAnalyzeUpload)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
}

// HandleAnalyze analyzes a raw log posted as the request body.
// @Summary Analyze Log
// @Description Segment a raw WASON/APOPLUS log by site and flag APO remnants.
// @Tags remnant
// @Accept plain
// @Produce json
// @Param view query string false "Sites to list: all, apo or clean" default(all)
// @Param save query bool false "Persist the run"
// @Success 200 {object} remnant.Report "Analysis Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /remnant/analyze [post]
func (h *Handler) HandleAnalyze(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	view, err := ParseView(c.Query("view"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The body buffer is reused by fasthttp after the handler returns.
	raw := append([]byte(nil), c.Body()...)
	a, err := h.service.Analyze(c.UserContext(), raw)
	if err != nil {
		l.Error("Analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	report := BuildReport(a, h.service.Sites(), view)
	if c.QueryBool("save") {
		run, err := h.service.SaveRun(c.UserContext(), a, "api", nil)
		if err != nil {
			l.Error("Saving run failed", zap.Error(err))
			return h.fail(c, err)
		}
		report.RunID = run.ID
	}

	l.Info("Log analyzed",
		zap.String("digest", a.Digest),
		zap.Int("sites", report.KPI.TotalSites),
		zap.Int("remnant_sites", report.KPI.RemnantSites),
	)
	return c.JSON(report)
}

// HandleSites returns the site table.
// @Summary Site Table
// @Description List the WASON node addresses and their site names.
// @Tags remnant
// @Produce json
// @Success 200 {object} map[string]string "Sites"
// @Router /remnant/sites [get]
func (h *Handler) HandleSites(c *fiber.Ctx) error {
	return c.JSON(h.service.Sites())
}

// HandleUpload stores a raw log.
// @Summary Upload Log
// @Description Store a raw log in object storage and record it.
// @Tags remnant
// @Accept mpfd
// @Produce json
// @Param file formData file true "Raw log"
// @Success 201 {object} models.Upload "Upload"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /remnant/uploads [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing form file 'file'"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer f.Close()

	up, err := h.service.Upload(c.UserContext(), fh.Filename, f)
	if err != nil {
		l.Error("Upload failed", zap.Error(err))
		return h.fail(c, err)
	}

	l.Info("Log uploaded", zap.String("key", up.StoredPath), zap.Int64("size", up.Size))
	return c.Status(fiber.StatusCreated).JSON(up)
}

// HandleListUploads lists stored logs.
// @Summary List Uploads
// @Description List uploaded logs, newest first.
// @Tags remnant
// @Produce json
// @Param date query string false "Upload date (YYYY-MM-DD)"
// @Success 200 {array} models.Upload "Uploads"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /remnant/uploads [get]
func (h *Handler) HandleListUploads(c *fiber.Ctx) error {
	uploads, err := h.service.ListUploads(c.UserContext(), c.Query("date"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing uploads failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(uploads)
}

// HandleDeleteUpload deletes a stored log.
// @Summary Delete Upload
// @Tags remnant
// @Param id path int true "Upload ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /remnant/uploads/{id} [delete]
func (h *Handler) HandleDeleteUpload(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DeleteUpload(c.UserContext(), id); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Deleting upload failed", zap.Uint("id", id), zap.Error(err))
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleAnalyzeUpload analyzes a stored log.
// @Summary Analyze Upload
// @Description Analyze a stored log. Results are cached by content digest.
// @Tags remnant
// @Produce json
// @Param id path int true "Upload ID"
// @Param view query string false "Sites to list: all, apo or clean" default(all)
// @Param save query bool false "Persist the run"
// @Success 200 {object} remnant.Report "Analysis Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /remnant/uploads/{id}/analyze [post]
func (h *Handler) HandleAnalyzeUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	view, err := ParseView(c.Query("view"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	a, up, err := h.service.AnalyzeUpload(c.UserContext(), id)
	if err != nil {
		l.Error("Upload analysis failed", zap.Uint("id", id), zap.Error(err))
		return h.fail(c, err)
	}

	report := BuildReport(a, h.service.Sites(), view)
	if c.QueryBool("save") {
		run, err := h.service.SaveRun(c.UserContext(), a, up.OrigFilename, &up.ID)
		if err != nil {
			l.Error("Saving run failed", zap.Error(err))
			return h.fail(c, err)
		}
		report.RunID = run.ID
	}
	return c.JSON(report)
}

// HandleListRuns lists persisted runs.
// @Summary List Runs
// @Tags remnant
// @Produce json
// @Param limit query int false "Maximum number of runs" default(50)
// @Success 200 {array} models.AnalysisRun "Runs"
// @Failure 503 {object} map[string]string "Database Unavailable"
// @Router /remnant/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	runs, err := h.service.ListRuns(c.UserContext(), c.QueryInt("limit", 50))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing runs failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(runs)
}

// HandleGetRun returns one persisted run.
// @Summary Get Run
// @Tags remnant
// @Produce json
// @Param id path int true "Run ID"
// @Success 200 {object} models.AnalysisRun "Run"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /remnant/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	run, err := h.service.GetRun(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(run)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrNoDatabase):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
