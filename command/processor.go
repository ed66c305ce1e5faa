package command

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/milassist/ai/openrouter"
	"github.com/teranos/milassist/ai/provider"
	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/errors"
	"github.com/teranos/milassist/geocode"
	"github.com/teranos/milassist/logger"
	"github.com/teranos/milassist/milsymbol"
	"github.com/teranos/milassist/sidc"
)

// ErrEmptyCommand is returned for blank input.
var ErrEmptyCommand = errors.Mark(errors.New("Command cannot be empty."), errors.ErrInvalidRequest)

// Stage names the step that produced a feature.
type Stage string

const (
	StageModel       Stage = "model"
	StageFallback    Stage = "fallback"
	StagePlaceholder Stage = "placeholder"
)

// Options wires a Processor. Nil AI skips the model stage; nil Renderer
// uses the built-in milsymbol oracle.
type Options struct {
	AI               provider.AIClient
	Geocoder         geocode.Geocoder
	Renderer         sidc.Renderer
	Timeout          time.Duration
	DefaultSymbolSet string
	Logger           *zap.SugaredLogger
}

// Processor turns free-text commands into map features. Safe for
// concurrent use.
type Processor struct {
	ai         provider.AIClient
	geo        geocode.Geocoder
	renderer   sidc.Renderer
	timeout    time.Duration
	defaultSet string
	logger     *zap.SugaredLogger
}

// NewProcessor creates a Processor.
func NewProcessor(opts Options) *Processor {
	p := &Processor{
		ai:         opts.AI,
		geo:        opts.Geocoder,
		renderer:   opts.Renderer,
		timeout:    opts.Timeout,
		defaultSet: opts.DefaultSymbolSet,
		logger:     logger.OrNop(opts.Logger),
	}
	if p.renderer == nil {
		p.renderer = milsymbol.Renderer{}
	}
	if p.defaultSet == "" {
		p.defaultSet = sidc.SymbolSetLandUnit.String()
	}
	return p
}

// NewProcessorFromConfig wires the configured LLM backend, Mapbox geocoder
// and the milsymbol oracle.
func NewProcessorFromConfig(cfg *am.Config, log *zap.SugaredLogger) *Processor {
	return NewProcessor(Options{
		AI:               provider.NewAIClient(cfg, log),
		Geocoder:         geocode.NewFromConfig(cfg, log),
		Timeout:          cfg.GetCommandTimeout(),
		DefaultSymbolSet: cfg.GetDefaultSymbolSet(),
		Logger:           log,
	})
}

// Process interprets cmd. Routes are geocoded; symbols get a SIDC, a
// validity verdict and renderer metadata.
func (p *Processor) Process(ctx context.Context, cmd string) (*Result, error) {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil, ErrEmptyCommand
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	log := logger.FromContext(ctx, p.logger)
	start := time.Now()

	feature, stage, err := p.extract(ctx, cmd, log)
	if err != nil {
		return nil, err
	}

	var res *Result
	switch feature.Kind {
	case KindRoute:
		res, err = p.route(ctx, feature.Route)
	case KindSymbol:
		res, err = p.symbol(ctx, feature.Symbol, stage)
	default:
		err = errors.New("Unrecognized feature type from AI.")
	}
	if err != nil {
		return nil, err
	}

	log.Infow("Command processed",
		logger.FieldFeatureType, feature.Kind,
		logger.FieldStage, stage,
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return res, nil
}

// extract runs the model, then the pattern parser, then the placeholder.
// A busy model and cancellation are surfaced; other model failures fall
// through to the parser.
func (p *Processor) extract(ctx context.Context, cmd string, log *zap.SugaredLogger) (Feature, Stage, error) {
	if p.ai != nil {
		resp, err := p.ai.Chat(ctx, openrouter.ChatRequest{
			SystemPrompt: systemPrompt,
			UserPrompt:   userPrompt(cmd),
			JSON:         true,
		})
		switch {
		case err == nil:
			f, derr := DecodeFeature([]byte(resp.Content))
			if derr == nil {
				return f, StageModel, nil
			}
			log.Warnw("Model output rejected", logger.FieldError, derr)
		case errors.Is(err, errors.ErrModelBusy), ctx.Err() != nil:
			return Feature{}, "", err
		default:
			log.Warnw("Model extraction failed", logger.FieldError, err)
		}
	}

	if d, ok := fallbackSymbol(ctx, cmd, p.geo, log); ok {
		return Feature{Kind: KindSymbol, Symbol: d}, StageFallback, nil
	}
	if err := ctx.Err(); err != nil {
		return Feature{}, "", err
	}
	return Feature{Kind: KindSymbol, Symbol: placeholderSymbol()}, StagePlaceholder, nil
}

func (p *Processor) symbol(ctx context.Context, d *SymbolData, stage Stage) (*Result, error) {
	if d.SymbolSet == "" {
		d.SymbolSet = p.defaultSet
	}
	if !d.HasCoordinates() {
		if d.LocationName == "" || p.geo == nil {
			return nil, errors.WithStack(errors.ErrNoCoordinates)
		}
		pt, err := p.geo.Geocode(ctx, d.LocationName)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "Could not find coordinates for \"%s\".", d.LocationName), errors.ErrNoCoordinates)
		}
		d.SetCoordinates(pt.Latitude, pt.Longitude)
	}

	rec := d.Record()
	code := sidc.Generate(rec)
	d.MainIconID = rec.MainIconID
	md := sidc.Metadata(p.renderer, code)

	return &Result{
		Kind: KindSymbol,
		Symbol: &SymbolResult{
			Type: KindSymbol,
			Feature: GeoFeature{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "Point",
					Coordinates: [2]float64{*d.Longitude, *d.Latitude},
				},
				Properties: FeatureProperties{
					ID:         uuid.NewString(),
					SIDC:       code,
					MainIconID: rec.MainIconID,
				},
			},
			Metadata: SymbolDetails{
				SymbolData:   *d,
				SIDC:         code,
				Valid:        sidc.Validate(p.renderer, code),
				FunctionName: sidc.FunctionIDName(rec.SymbolSet, rec.MainIconID),
				Render:       md,
				Stage:        stage,
			},
		},
	}, nil
}

func (p *Processor) route(ctx context.Context, r *RouteData) (*Result, error) {
	notFound := errors.Mark(
		errors.Newf("Could not find coordinates for \"%s\" or \"%s\".", r.StartLocationName, r.EndLocationName),
		errors.ErrLocationNotFound)
	if p.geo == nil {
		return nil, notFound
	}

	var start, end geocode.Point
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		start, err = p.geo.Geocode(gctx, r.StartLocationName)
		return err
	})
	g.Go(func() (err error) {
		end, err = p.geo.Geocode(gctx, r.EndLocationName)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, errors.ErrModelBusy) || ctx.Err() != nil {
			return nil, err
		}
		p.logger.Debugw("Route geocoding failed", logger.FieldError, err)
		return nil, notFound
	}

	return &Result{
		Kind: KindRoute,
		Route: &RouteResult{
			Type: KindRoute,
			Data: RouteResultData{
				Start:    start,
				End:      end,
				PathType: r.PathType,
				UnitInfo: r.UnitInfo,
			},
		},
	}, nil
}

// UserMessage renders err as text for the command bar.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrEmptyCommand) {
		return ErrEmptyCommand.Error()
	}
	msg := err.Error()
	if errors.Is(err, errors.ErrModelBusy) || strings.Contains(msg, "503") || strings.Contains(strings.ToLower(msg), "overloaded") {
		return "The AI model is currently busy. Please try your command again shortly."
	}
	return "Failed to process command: " + msg
}
