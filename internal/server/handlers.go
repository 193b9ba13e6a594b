package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adcraft/internal/creative"
	"adcraft/internal/engine"
	"adcraft/pkg/config"
)

type Handler struct {
	campaign Campaign
	cfg      *config.Config
}

func NewHandler(campaign Campaign, cfg *config.Config) *Handler {
	return &Handler{campaign: campaign, cfg: cfg}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) SetBrand(c *gin.Context) {
	var brand creative.Brand
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand payload"})
		return
	}
	if brand.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if brand.Tone == nil {
		brand.Tone = []string{"playful"}
	}
	if brand.BannedPhrases == nil {
		brand.BannedPhrases = []string{}
	}

	h.campaign.SetBrand(brand)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) SetBrief(c *gin.Context) {
	var brief creative.Brief
	if err := c.ShouldBindJSON(&brief); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brief payload"})
		return
	}
	if brief.Product == "" || brief.Audience == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product and audience are required"})
		return
	}
	if brief.Channels == nil {
		brief.Channels = []string{"Instagram"}
	}
	if brief.Regions == nil {
		brief.Regions = []string{"IN", "US"}
	}

	h.campaign.SetBrief(brief)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Generate(c *gin.Context) {
	var req engine.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "program_name and target_audience are required"})
		return
	}
	if req.ProgramName == "" || req.TargetAudience == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "program_name and target_audience are required"})
		return
	}

	resp, err := h.campaign.Generate(c.Request.Context(), req)
	if err != nil {
		slog.Error("Generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Localize(c *gin.Context) {
	byRegion, err := h.campaign.Localize(c.Request.Context())
	if err != nil {
		if errors.Is(err, engine.ErrNoCreatives) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.Error("Localization failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "localization failed"})
		return
	}
	c.JSON(http.StatusOK, byRegion)
}

func (h *Handler) Serve(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}

	chosen, err := h.campaign.Serve(region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"region": region, "creative": chosen})
}

func (h *Handler) Feedback(c *gin.Context) {
	var fb creative.Feedback
	if err := c.ShouldBindJSON(&fb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback payload"})
		return
	}

	h.campaign.Feedback(fb.Region, fb.CreativeID, fb.Clicked != 0)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Simulate(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "region is required"})
		return
	}
	rounds := getQueryInt(c, "n", h.cfg.Engine.SimulateRounds)

	events, err := h.campaign.Simulate(region, rounds)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "events": events})
}

func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.campaign.Dashboard())
}

func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"provider":           h.cfg.Copywriter.Provider,
		"groq_model":         h.cfg.Copywriter.GroqModel,
		"openai_model":       h.cfg.Copywriter.OpenAIModel,
		"groq_key_present":   h.cfg.GroqAPIKey != "",
		"openai_key_present": h.cfg.OpenAIAPIKey != "",
	})
}

func getQueryInt(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", raw, "error", err)
		return defaultValue
	}
	return value
}
