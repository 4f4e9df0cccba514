// Package adaptmcp exposes the calculator and catalog as MCP tool calls over
// plain HTTP POST.
package adaptmcp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"nutriplan/internal/app"
	"nutriplan/internal/domain"
)

type toolFunc func(req *protocol.CallToolRequest) (*protocol.CallToolResult, error)

type toolEntry struct {
	tool    *protocol.Tool
	handler toolFunc
}

// Handler dispatches CallToolRequests to the application services. GET
// lists the tool definitions with their input schemas.
type Handler struct {
	recs    *app.RecommendationService
	catalog *app.CatalogService
	tools   []toolEntry
	byName  map[string]toolFunc
}

// New creates a Handler with the calculate_diet, list_diet_plans and
// list_foods tools.
func New(recs *app.RecommendationService, cat *app.CatalogService) *Handler {
	h := &Handler{recs: recs, catalog: cat}
	h.register(calculateDietTool, h.handleCalculateDiet)
	h.register(listDietPlansTool, h.handleListDietPlans)
	h.register(listFoodsTool, h.handleListFoods)
	return h
}

func (h *Handler) register(tool *protocol.Tool, fn toolFunc) {
	if h.byName == nil {
		h.byName = make(map[string]toolFunc)
	}
	h.tools = append(h.tools, toolEntry{tool: tool, handler: fn})
	h.byName[tool.Name] = fn
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTools(w)
		return
	case http.MethodPost:
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request protocol.CallToolRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return
	}

	tool, ok := h.byName[request.Name]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown tool: %s", request.Name), http.StatusNotFound)
		return
	}

	result, err := tool(&request)
	if err != nil {
		log.Printf("mcp: tool %s: %v", request.Name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeResponse(w, result)
}

func (h *Handler) listTools(w http.ResponseWriter) {
	tools := make([]*protocol.Tool, 0, len(h.tools))
	for _, e := range h.tools {
		tools = append(tools, e.tool)
	}
	writeResponse(w, protocol.NewListToolsResult(tools, ""))
}

func writeResponse(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("mcp: failed to encode response: %v", err)
	}
}

func enumOf[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var (
	genderEnum   = enumOf(domain.GenderMale, domain.GenderFemale)
	activityEnum = enumOf(domain.Sedentary, domain.LightlyActive, domain.ModeratelyActive, domain.VeryActive, domain.ExtremelyActive)
	goalEnum     = enumOf(domain.WeightLoss, domain.MuscleGain, domain.Maintenance)
)

var calculateDietTool = &protocol.Tool{
	Name:        "calculate_diet",
	Description: "Compute BMI, BMR, daily calories, macros and a diet plan from biometrics",
	InputSchema: protocol.InputSchema{
		Type: protocol.Object,
		Properties: map[string]any{
			"weight":        map[string]any{"type": "number", "description": "body weight in kg"},
			"height":        map[string]any{"type": "number", "description": "height in cm"},
			"age":           map[string]any{"type": "integer", "description": "age in years"},
			"gender":        map[string]any{"type": "string", "enum": genderEnum},
			"activityLevel": map[string]any{"type": "string", "enum": activityEnum},
			"goal":          map[string]any{"type": "string", "enum": goalEnum},
		},
		Required: []string{"weight", "height", "age", "gender", "activityLevel"},
	},
}

var listDietPlansTool = &protocol.Tool{
	Name:        "list_diet_plans",
	Description: "List the diet plans, or the plan for one goal",
	InputSchema: protocol.InputSchema{
		Type: protocol.Object,
		Properties: map[string]any{
			"goal": map[string]any{"type": "string", "enum": goalEnum},
		},
	},
}

var listFoodsTool = &protocol.Tool{
	Name:        "list_foods",
	Description: "List recommended foods, optionally for one category",
	InputSchema: protocol.InputSchema{
		Type: protocol.Object,
		Properties: map[string]any{
			"category": map[string]any{"type": "string", "enum": enumOf(domain.Proteins, domain.Carbs, domain.Fats)},
		},
	},
}

type planParams struct {
	Goal string `json:"goal,omitempty" description:"weightLoss, muscleGain or maintenance; omit for all plans"`
}

type foodParams struct {
	Category string `json:"category,omitempty" description:"proteins, carbs or fats; omit for all categories"`
}

// extractParams round-trips the argument map through JSON into target.
func extractParams(req *protocol.CallToolRequest, target any) error {
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	return nil
}

func (h *Handler) handleCalculateDiet(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params app.CalculateInput
	if err := extractParams(req, &params); err != nil {
		return errorResult(err), nil
	}

	rec, err := h.recs.Calculate(params)
	if app.IsValidation(err) {
		return errorResult(err), nil
	}
	if err != nil {
		return nil, err
	}
	return jsonResult(rec)
}

func (h *Handler) handleListDietPlans(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params planParams
	if err := extractParams(req, &params); err != nil {
		return errorResult(err), nil
	}
	if params.Goal != "" {
		return jsonResult(h.catalog.Plan(domain.Goal(params.Goal)))
	}
	return jsonResult(h.catalog.Plans())
}

func (h *Handler) handleListFoods(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params foodParams
	if err := extractParams(req, &params); err != nil {
		return errorResult(err), nil
	}
	if params.Category == "" {
		return jsonResult(h.catalog.Foods())
	}
	items, err := h.catalog.FoodsByCategory(params.Category)
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(items)
}

func jsonResult(data any) (*protocol.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: string(jsonBytes),
			},
		},
	}, nil
}

// errorResult reports a caller mistake inside the tool result so the
// assistant can correct its arguments.
func errorResult(err error) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		Content: []protocol.Content{
			protocol.TextContent{
				Type: "text",
				Text: err.Error(),
			},
		},
		IsError: true,
	}
}
