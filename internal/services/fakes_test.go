package services

import (
	"github.com/HIMK322/TENET/internal/repositories"
	"github.com/HIMK322/TENET/internal/repositories/repotest"
)

func newTestStore() *repositories.Store {
	return repotest.NewStore()
}
