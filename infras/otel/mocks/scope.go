package mocks

import "rentals/infras/otel"

type scopeImpl struct{}

func NewScope() otel.Scope {
	return scopeImpl{}
}

func (scopeImpl) End() {}

func (scopeImpl) TraceError(_ error) {}

func (scopeImpl) TraceIfError(_ error) {}

func (scopeImpl) AddEvent(_ string) {}

func (scopeImpl) SetAttribute(_ string, _ any) {}

func (scopeImpl) SetAttributes(_ map[string]any) {}
