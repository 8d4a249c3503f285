package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
	"rentease-backend/services"
)

type PropertyHandler struct {
	propertyService services.PropertyService
	Tracer          trace.Tracer
	logger          *logrus.Logger
}

func NewPropertyHandler(propertyService services.PropertyService, tr trace.Tracer, logger *logrus.Logger) PropertyHandler {
	return PropertyHandler{propertyService, tr, logger}
}

func (s *PropertyHandler) GetAllProperties(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "PropertyHandler.GetAllProperties")
	defer span.End()

	filter, err := parsePropertyFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	properties, err := s.propertyService.GetAllProperties(spanCtx, filter)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, properties)
}

func (s *PropertyHandler) GetPropertyById(ctx *gin.Context) {
	spanCtx, span := s.Tracer.Start(ctx.Request.Context(), "PropertyHandler.GetPropertyById")
	defer span.End()

	property, err := s.propertyService.GetPropertyById(spanCtx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound()) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.ErrPropertyNotFound().Error()})
			return
		}
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, property)
}

func parsePropertyFilter(ctx *gin.Context) (*domain.PropertyFilter, error) {
	filter := &domain.PropertyFilter{
		Location: ctx.Query("location"),
	}

	if raw := ctx.Query("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("minPrice must be a number")
		}
		filter.MinPrice = &minPrice
	}
	if raw := ctx.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("maxPrice must be a number")
		}
		filter.MaxPrice = &maxPrice
	}
	if raw := ctx.Query("minBedrooms"); raw != "" {
		minBedrooms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("minBedrooms must be an integer")
		}
		filter.MinBedrooms = &minBedrooms
	}

	return filter, nil
}
