package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/openzoo/zoo-registry/internal/pkg/application/zoo"
	apierrors "github.com/openzoo/zoo-registry/internal/pkg/presentation/api/errors"
	models "github.com/openzoo/zoo-registry/pkg/datamodels/zoo"
	"github.com/openzoo/zoo-registry/pkg/entity"
	"github.com/openzoo/zoo-registry/pkg/serializer"
)

var tracer = otel.Tracer("zoo-registry/api/entities")

//NewRetrieveAnimalHandler handles GET requests for a single animal
func NewRetrieveAnimalHandler(app zoo.Registry, s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {
	return newRetrieveHandler(models.AnimalTypeName, app.RetrieveAnimal, s, rules)
}

//NewRetrieveZookeeperHandler handles GET requests for a single zookeeper
func NewRetrieveZookeeperHandler(app zoo.Registry, s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {
	return newRetrieveHandler(models.ZookeeperTypeName, app.RetrieveZookeeper, s, rules)
}

//NewRetrieveEnclosureHandler handles GET requests for a single enclosure
func NewRetrieveEnclosureHandler(app zoo.Registry, s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {
	return newRetrieveHandler(models.EnclosureTypeName, app.RetrieveEnclosure, s, rules)
}

//NewListAnimalsHandler handles GET requests for the animal collection
func NewListAnimalsHandler(app zoo.Registry, s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {
	return newListHandler(models.AnimalTypeName, app.ListAnimals, s, rules)
}

//NewListZookeepersHandler handles GET requests for the zookeeper collection
func NewListZookeepersHandler(app zoo.Registry, s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {
	return newListHandler(models.ZookeeperTypeName, app.ListZookeepers, s, rules)
}

//NewListEnclosuresHandler handles GET requests for the enclosure collection
func NewListEnclosuresHandler(app zoo.Registry, s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {
	return newListHandler(models.EnclosureTypeName, app.ListEnclosures, s, rules)
}

func newRetrieveHandler(entityType string, retrieve func(context.Context, int64) (entity.Entity, error), s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {

	spanName := "retrieve-" + strings.ToLower(entityType)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labelEntityType(ctx, entityType)

		ctx, span := tracer.Start(ctx, spanName)
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()

		traceID := traceIDFromSpan(span)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			apierrors.ReportNewBadRequestData(w, fmt.Sprintf("id must be an integer: %s", err.Error()), traceID)
			return
		}

		e, err := retrieve(ctx, id)
		if err != nil {
			reportRegistryError(w, err, traceID)
			return
		}

		rule, err := rules.Default(entityType)
		if err != nil {
			apierrors.ReportNewInternalError(w, err.Error(), traceID)
			return
		}

		var result serializer.Object

		if fields := fieldsParam(r); len(fields) > 0 {
			result, err = s.Partial(e, rule, fields...)
		} else {
			result, err = s.Serialize(e, rule)
		}

		if err != nil {
			reportSerializationError(w, err, traceID)
			return
		}

		writeJSON(w, result)
	})
}

func newListHandler(entityType string, list func(context.Context) ([]entity.Entity, error), s *serializer.Serializer, rules *serializer.Registry) http.HandlerFunc {

	spanName := "list-" + strings.ToLower(entityType)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx := r.Context()
		labelEntityType(ctx, entityType)

		ctx, span := tracer.Start(ctx, spanName)
		defer func() {
			if err != nil {
				span.RecordError(err)
			}
			span.End()
		}()

		traceID := traceIDFromSpan(span)

		entities, err := list(ctx)
		if err != nil {
			reportRegistryError(w, err, traceID)
			return
		}

		rule, err := rules.Default(entityType)
		if err != nil {
			apierrors.ReportNewInternalError(w, err.Error(), traceID)
			return
		}

		var result []serializer.Object

		if fields := fieldsParam(r); len(fields) > 0 {
			result = make([]serializer.Object, 0, len(entities))
			for _, e := range entities {
				obj, perr := s.Partial(e, rule, fields...)
				if perr != nil {
					err = perr
					break
				}
				result = append(result, obj)
			}
		} else {
			result, err = s.SerializeMany(entities, rule)
		}

		if err != nil {
			reportSerializationError(w, err, traceID)
			return
		}

		writeJSON(w, result)
	})
}

func reportRegistryError(w http.ResponseWriter, err error, traceID string) {
	switch e := err.(type) {
	case zoo.NotFoundError:
		apierrors.ReportNotFoundError(w, e.Error(), traceID)
	case zoo.InvalidRequestError:
		apierrors.ReportNewBadRequestData(w, e.Error(), traceID)
	default:
		apierrors.ReportNewInternalError(w, e.Error(), traceID)
	}
}

func reportSerializationError(w http.ResponseWriter, err error, traceID string) {
	// an unknown field here comes from the request's fields parameter
	if errors.Is(err, serializer.ErrUnknownField) {
		apierrors.ReportNewBadRequestData(w, err.Error(), traceID)
		return
	}

	apierrors.ReportNewInternalError(w, err.Error(), traceID)
}

func fieldsParam(r *http.Request) []string {
	fields := make([]string, 0, 4)

	for _, f := range strings.Split(r.URL.Query().Get("fields"), ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}

	return fields
}

func traceIDFromSpan(span trace.Span) string {
	if span.SpanContext().HasTraceID() {
		return span.SpanContext().TraceID().String()
	}

	return ""
}

func writeJSON(w http.ResponseWriter, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		apierrors.ReportNewInternalError(w, err.Error(), "")
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
