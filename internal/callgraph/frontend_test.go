package callgraph

import (
	"testing"

	"go.uber.org/mock/gomock"
)

func TestMockFrontendSatisfiesInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := New()

	var f Frontend = NewMockFrontend(ctrl)
	mf := f.(*MockFrontend)
	mf.EXPECT().Build(g, "/tmp/project").Return(nil)

	if err := f.Build(g, "/tmp/project"); err != nil {
		t.Fatalf("Build: %v", err)
	}
}
