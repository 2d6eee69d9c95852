// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/surveyspace/cluster"
	"github.com/katalvlaran/surveyspace/ellipsoid"
	"github.com/katalvlaran/surveyspace/embed"
	"github.com/katalvlaran/surveyspace/feature"
	"github.com/katalvlaran/surveyspace/geom"
)

// NoCluster marks a point that was not part of a clustering run.
const NoCluster = -1

// Request selects one scene.
type Request struct {
	Base string
	Mode embed.Mode

	// Group limits per-group clustering to one group; empty means all groups.
	Group string

	// Filter marks matching points visible; nil marks every point visible.
	Filter *feature.OptionFilter
}

// ScenePoint is one respondent of a scene.
type ScenePoint struct {
	geom.Point3D
	Name         string `json:"name,omitempty"`
	Group        string `json:"group"`
	Cluster      int    `json:"cluster"`
	GroupCluster int    `json:"group_cluster"`
	Visible      bool   `json:"visible"`
}

// GroupSummary is the per-group clustering of a scene.
type GroupSummary struct {
	Result cluster.Result `json:"result"`

	// Sizes[c] counts the group members in group cluster c.
	Sizes []int `json:"sizes"`

	// Dominant is the global cluster most members belong to (lowest id on ties).
	Dominant int `json:"dominant"`
}

// SceneMeta summarizes how a scene was produced.
type SceneMeta struct {
	Question     string  `json:"question,omitempty"`
	Columns      int     `json:"columns"`
	JitterSD     float64 `json:"jitter_sd"`
	Distinct     int     `json:"distinct"`
	NClusters    int     `json:"n_clusters"`
	SourceMethod string  `json:"source_method,omitempty"`
	NoiseSD      float64 `json:"noise_sd,omitempty"`
	Fallback     bool    `json:"fallback,omitempty"`
	Matched      int     `json:"matched"`
}

// Scene is the full result for one question and mode.
type Scene struct {
	Base       string                   `json:"base"`
	Mode       embed.Mode               `json:"mode"`
	Method     string                   `json:"method"`
	Points     []ScenePoint             `json:"points"`
	Global     cluster.Result           `json:"global"`
	Groups     map[string]GroupSummary  `json:"groups"`
	Ellipsoids map[int]ellipsoid.Params `json:"ellipsoids"`
	Meta       SceneMeta                `json:"meta"`
}

// Scene embeds, clusters and outlines one question.
// Errors: everything Embed returns, ErrUnknownGroup, ErrUnknownColumn and
// ctx.Err().
func (e *Engine) Scene(ctx context.Context, req Request) (*Scene, error) {
	em, err := e.Embed(req.Base, req.Mode)
	if err != nil {
		return nil, err
	}
	if req.Filter != nil && !hasColumn(em.Table, req.Filter.Column) {
		return nil, fmt.Errorf("filter column %q in %s: %w", req.Filter.Column, req.Base, ErrUnknownColumn)
	}

	global, err := e.GlobalClusters(ctx, em)
	if err != nil {
		return nil, err
	}

	sc := &Scene{
		Base:   em.Base(),
		Mode:   em.Mode,
		Method: em.Projection.Method,
		Points: make([]ScenePoint, len(em.Projection.Points)),
		Global: global,
		Groups: make(map[string]GroupSummary),
		Meta: SceneMeta{
			Question:     em.Question.QuestionFull,
			Columns:      em.Table.Width(),
			JitterSD:     em.Projection.JitterSD,
			Distinct:     em.Projection.Distinct,
			NClusters:    global.K,
			SourceMethod: em.Meta.Method,
			NoiseSD:      em.Meta.NoiseSD,
			Fallback:     em.Fallback,
		},
	}
	for i, p := range em.Projection.Points {
		visible := req.Filter == nil || req.Filter.Match(em.Table, i)
		if visible {
			sc.Meta.Matched++
		}
		sc.Points[i] = ScenePoint{
			Point3D:      p,
			Name:         em.Names[p.ID],
			Group:        em.Table.Group(i),
			Cluster:      global.Assignment[p.ID],
			GroupCluster: NoCluster,
			Visible:      visible,
		}
	}

	groups := Groups(em)
	if req.Group != "" {
		groups = []string{req.Group}
	}
	for _, g := range groups {
		res, err := e.GroupClusters(ctx, em, g)
		if err != nil {
			return nil, err
		}
		gc := GroupSummary{Result: res, Sizes: make([]int, res.K)}
		votes := make(map[int]int)
		for i := range sc.Points {
			p := &sc.Points[i]
			if p.Group != g {
				continue
			}
			p.GroupCluster = res.Assignment[p.ID]
			if p.GroupCluster >= 0 && p.GroupCluster < len(gc.Sizes) {
				gc.Sizes[p.GroupCluster]++
			}
			votes[p.Cluster]++
		}
		gc.Dominant = dominant(votes)
		sc.Groups[g] = gc
	}

	start := time.Now()
	sc.Ellipsoids = ellipsoid.FitAssignment(em.Projection.Points, global.Assignment, e.ellOpt...)
	e.metrics.ObserveCompute(StageEllipsoid, time.Since(start))

	e.log.Debug().Str("base", sc.Base).Str("mode", sc.Mode.String()).Str("method", sc.Method).
		Int("k", global.K).Int("groups", len(sc.Groups)).Msg("Scene ready")

	return sc, nil
}

func hasColumn(t *feature.Table, col string) bool {
	if col == "" || col == feature.AnyColumn {
		return true
	}
	for _, c := range t.Columns() {
		if c == col {
			return true
		}
	}

	return false
}

// dominant returns the key with the most votes, lowest key on ties.
func dominant(votes map[int]int) int {
	best, bestN := 0, -1
	for c, n := range votes {
		if n > bestN || (n == bestN && c < best) {
			best, bestN = c, n
		}
	}

	return best
}
