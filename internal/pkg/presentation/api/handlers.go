package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/openzoo/zoo-registry/internal/pkg/application/zoo"
	"github.com/openzoo/zoo-registry/pkg/serializer"
)

const TraceAttributeEntityType string = "zoo.entitytype"

func RegisterHandlers(ctx context.Context, r *chi.Mux, app zoo.Registry, rules *serializer.Registry) error {

	s := serializer.New(rules)

	r.Route("/api/zoo/v1", func(r chi.Router) {
		r.Use(Logger(logging.GetFromContext(ctx)))

		r.Route("/animals", func(r chi.Router) {
			r.Get("/", NewListAnimalsHandler(app, s, rules))
			r.Get("/{id}", NewRetrieveAnimalHandler(app, s, rules))
		})

		r.Route("/zookeepers", func(r chi.Router) {
			r.Get("/", NewListZookeepersHandler(app, s, rules))
			r.Get("/{id}", NewRetrieveZookeeperHandler(app, s, rules))
		})

		r.Route("/enclosures", func(r chi.Router) {
			r.Get("/", NewListEnclosuresHandler(app, s, rules))
			r.Get("/{id}", NewRetrieveEnclosureHandler(app, s, rules))
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// labelEntityType tags the active otelhttp labeler, if any, with the
// entity type being served
func labelEntityType(ctx context.Context, entityType string) {
	if labeler, found := otelhttp.LabelerFromContext(ctx); found {
		labeler.Add(attribute.String(TraceAttributeEntityType, entityType))
	}
}
