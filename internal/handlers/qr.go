package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle"
)

// QRHandler generates styled QR codes with customization options passed as
// query parameters.
func (h *Handler) QRHandler(c *gin.Context) {
	data := strings.TrimSpace(c.Query("data"))
	if data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data parameter is required"})
		return
	}
	if len(data) > 4096 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is too long"})
		return
	}

	format, err := qrstyle.ParseOutputFormat(strings.ToLower(c.DefaultQuery("format", "svg")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size := parseIntParam(c.DefaultQuery("size", "300"), 300)
	width := parseIntParam(c.DefaultQuery("width", strconv.Itoa(size)), size)
	height := parseIntParam(c.DefaultQuery("height", strconv.Itoa(size)), size)
	margin := parseIntParam(c.DefaultQuery("margin", "0"), 0)

	shape := qrstyle.ShapeSquare
	if c.DefaultQuery("shape", "square") == "circle" {
		shape = qrstyle.ShapeCircle
	}

	log.Printf("[QR] request: format=%s size=%dx%d shape=%s dotType=%s colorMode=%s",
		format.Extension(), width, height, c.DefaultQuery("shape", "square"),
		c.DefaultQuery("dotType", "square"), c.DefaultQuery("colorMode", "flat"))

	dots := qrstyle.DotsOptions{
		Type:      qrstyle.ParseDotType(c.DefaultQuery("dotType", "square")),
		Color:     parseColorParam(c.Query("fg"), qrstyle.Black),
		RoundSize: c.DefaultQuery("roundSize", "true") != "false",
	}
	if c.DefaultQuery("colorMode", "flat") == "gradient" {
		dots.Gradient = parseGradientParams(c)
		if err := dots.Gradient.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	builder := qrstyle.NewBuilder().
		Data(data).
		Width(width).
		Height(height).
		Margin(margin).
		Shape(shape).
		Dots(dots).
		CornersSquare(qrstyle.CornersSquareOptions{
			Type:  qrstyle.ParseCornerSquareType(c.DefaultQuery("cornerSquareType", "square")),
			Color: parseColorParam(c.Query("cornerSquareColor"), dots.Color),
		}).
		CornersDot(qrstyle.CornersDotOptions{
			Type:  qrstyle.ParseCornerDotType(c.DefaultQuery("cornerDotType", "dot")),
			Color: parseColorParam(c.Query("cornerDotColor"), dots.Color),
		}).
		Background(qrstyle.BackgroundOptions{
			Color: parseColorParam(c.Query("bg"), qrstyle.White),
			Round: parseFloatParam(c.DefaultQuery("bgRound", "0"), 0),
		}).
		QR(qrstyle.QROptions{
			ErrorCorrection: qrstyle.ParseErrorCorrectionLevel(c.DefaultQuery("ec", "Q")),
		})

	qr, err := builder.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// SVG-only border decoration
	if format == qrstyle.FormatSVG && c.Query("borderThickness") != "" {
		svg := qr.RenderSVG()
		svg = buildBorder(c).Apply(svg, width, height)
		sendPayload(c, []byte(svg), format)
		return
	}

	payload, err := qr.Render(format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("failed to render QR code: %v", err)})
		return
	}
	sendPayload(c, payload, format)
}

func sendPayload(c *gin.Context, payload []byte, format qrstyle.OutputFormat) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, format.MimeType(), payload)
	log.Printf("[QR] sent %s bytes=%d", format.Extension(), len(payload))
}

// buildBorder assembles a border decorator from query parameters.
func buildBorder(c *gin.Context) *qrstyle.Border {
	thickness := parseFloatParam(c.Query("borderThickness"), 10)
	color := parseColorParam(c.Query("borderColor"), qrstyle.Black)

	border := qrstyle.NewBorder(thickness, color).
		WithRound(parseFloatParam(c.DefaultQuery("borderRound", "0"), 0))

	if dash := c.Query("borderDash"); dash != "" {
		border.Main.DashArray = dash
	}
	if text := c.Query("borderText"); text != "" {
		border.WithText(qrstyle.PositionTop, text)
	}
	if text := c.Query("borderTextBottom"); text != "" {
		border.WithText(qrstyle.PositionBottom, text)
	}
	return border
}

// parseGradientParams reads the gradient parameters, defaulting to a
// black-to-red linear gradient at 45 degrees.
func parseGradientParams(c *gin.Context) *qrstyle.Gradient {
	start := parseColorParam(c.Query("gradientStart"), qrstyle.Black)
	end := parseColorParam(c.Query("gradientEnd"), qrstyle.RGB(255, 0, 0))
	rotation := parseFloatParam(c.DefaultQuery("gradientRotation", "45"), 45) * math.Pi / 180

	if c.DefaultQuery("gradientType", "linear") == "radial" {
		return qrstyle.SimpleRadial(start, end)
	}
	return qrstyle.LinearGradientRotated(rotation, qrstyle.Stop(0, start), qrstyle.Stop(1, end))
}

// parseColorParam parses a hex color query value, falling back on bad input.
func parseColorParam(param string, fallback qrstyle.Color) qrstyle.Color {
	if param == "" {
		return fallback
	}
	if strings.ToLower(param) == "transparent" {
		return qrstyle.Transparent
	}
	color, err := qrstyle.ParseColor(param)
	if err != nil {
		return fallback
	}
	return color
}

func parseIntParam(param string, fallback int) int {
	v, err := strconv.Atoi(param)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func parseFloatParam(param string, fallback float64) float64 {
	v, err := strconv.ParseFloat(param, 64)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
