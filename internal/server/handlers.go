package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/model"
	"github.com/Ertugrulkurtul/Macromeal-Planner/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 64 << 10

type foodView struct {
	Key            string        `json:"key"`
	Label          string        `json:"label"`
	Macro          service.Macro `json:"macro"`
	Unit           string        `json:"unit"`
	ProteinPerUnit float64       `json:"protein_per_unit,omitempty"`
	Per100g        float64       `json:"per_100g,omitempty"`
	Min            int           `json:"min"`
	Max            int           `json:"max"`
}

type templateView struct {
	Index int `json:"index"`
	service.PlanTemplate
}

type macroShares struct {
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
	Carb    int `json:"carb"`
}

type targetsResponse struct {
	Targets model.MacroTargets `json:"targets"`
	Shares  macroShares        `json:"shares"`
	Goal    string             `json:"goal_label"`
}

// planRequest is a targets input plus an optional template index. A missing
// template is drawn at random.
type planRequest struct {
	model.TargetsInput
	Template *int `json:"template"`
}

type planResponse struct {
	targetsResponse
	Plan model.MealPlan `json:"plan"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	foods := service.Foods()
	out := make([]foodView, 0, len(foods))
	for _, f := range foods {
		lo, hi := f.Range()
		v := foodView{Key: f.FoodKey(), Label: f.FoodLabel(), Macro: f.Role(), Min: lo, Max: hi}
		switch food := f.(type) {
		case service.UnitFood:
			v.Unit = food.Unit
			v.ProteinPerUnit = food.ProteinPerUnit
		case service.DensityFood:
			v.Unit = "g"
			v.Per100g = food.Per100g
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	templates := service.Templates()
	out := make([]templateView, 0, len(templates))
	for i, tpl := range templates {
		out = append(out, templateView{Index: i, PlanTemplate: tpl})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTargets(w http.ResponseWriter, r *http.Request) {
	var in model.TargetsInput
	if err := decodeJSON(w, r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	targets, err := service.ComputeTargets(in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newTargetsResponse(in.Goal, targets))
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	in, targets, plan, err := s.buildPlan(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{
		targetsResponse: newTargetsResponse(in.Goal, targets),
		Plan:            plan,
	})
}

func (s *Server) handlePlanText(w http.ResponseWriter, r *http.Request) {
	in, targets, plan, err := s.buildPlan(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	calc := model.Calculation{Input: in, Targets: targets, TemplateIndex: plan.TemplateIndex}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(service.RenderPlanText(calc, plan)))
}

func (s *Server) handleCalculation(w http.ResponseWriter, r *http.Request) {
	calc, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, calc)
}

func (s *Server) handleCalculationPlan(w http.ResponseWriter, r *http.Request) {
	calc, ok := s.loadCalculation(w, r)
	if !ok {
		return
	}
	plan, err := service.AllocateMeals(calc.Targets, calc.TemplateIndex)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{
		targetsResponse: newTargetsResponse(calc.Input.Goal, calc.Targets),
		Plan:            plan,
	})
}

func (s *Server) loadCalculation(w http.ResponseWriter, r *http.Request) (*model.Calculation, bool) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "storage not configured"})
		return nil, false
	}
	calc, err := service.GetCalculation(s.db, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return calc, true
}

func (s *Server) buildPlan(w http.ResponseWriter, r *http.Request) (model.TargetsInput, model.MacroTargets, model.MealPlan, error) {
	var req planRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return model.TargetsInput{}, model.MacroTargets{}, model.MealPlan{}, err
	}
	targets, err := service.ComputeTargets(req.TargetsInput)
	if err != nil {
		return model.TargetsInput{}, model.MacroTargets{}, model.MealPlan{}, err
	}
	var index int
	if req.Template != nil {
		if *req.Template < 0 {
			return model.TargetsInput{}, model.MacroTargets{}, model.MealPlan{}, badRequestError{msg: "template must be >= 0"}
		}
		index = *req.Template
	} else {
		index = s.pickTemplate()
	}
	plan, err := service.AllocateMeals(targets, index)
	if err != nil {
		return model.TargetsInput{}, model.MacroTargets{}, model.MealPlan{}, err
	}
	s.logger.Debug("plan allocated",
		zap.Int("target_calories", targets.TargetCalories),
		zap.Int("template_index", plan.TemplateIndex),
	)
	return req.TargetsInput, targets, plan, nil
}

func newTargetsResponse(goal model.Goal, t model.MacroTargets) targetsResponse {
	return targetsResponse{
		Targets: t,
		Shares: macroShares{
			Protein: service.MacroShare(t.ProteinG, 4, t.TargetCalories),
			Fat:     service.MacroShare(t.FatG, 9, t.TargetCalories),
			Carb:    service.MacroShare(t.CarbG, 4, t.TargetCalories),
		},
		Goal: service.GoalLabel(goal),
	}
}

type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string {
	return e.msg
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return badRequestError{msg: "content type must be application/json"}
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return badRequestError{msg: fmt.Sprintf("decode request: %v", err)}
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *service.InvalidProfileError
	var badReq badRequestError
	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: service.ErrInvalidProfile.Error(), Fields: invalid.Fields})
	case errors.As(err, &badReq):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: badReq.msg})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
