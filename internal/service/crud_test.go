package service

import (
	"context"
	"errors"
	"testing"

	"farmacia/internal/model"
	"farmacia/internal/repository"
	repoMocks "farmacia/internal/repository/mocks"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clienteRepoMock = repoMocks.MockCRUDRepository[model.Cliente, model.ClienteInput]

func TestCRUDService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantQuery repository.PageQuery
	}{
		{name: "explicit page", skip: 20, limit: 10, wantQuery: repository.PageQuery{Limit: 10, Offset: 20}},
		{name: "negative limit uses default", skip: 0, limit: -1, wantQuery: repository.PageQuery{Limit: DefaultLimit, Offset: 0}},
		{name: "negative skip clamps to zero", skip: -5, limit: 3, wantQuery: repository.PageQuery{Limit: 3, Offset: 0}},
		{name: "zero limit is an empty page", skip: 0, limit: 0, wantQuery: repository.PageQuery{Limit: 0, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(clienteRepoMock)
			svc := NewClienteService(mRepo)

			page := &repository.PageResult[model.Cliente]{Items: []model.Cliente{{ID: 1}}, Total: 1}
			mRepo.On("List", ctx, tt.wantQuery).Return(page, nil).Once()

			res, err := svc.List(ctx, tt.skip, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, page.Items, res.Items)
			assert.Equal(t, 1, res.Total)
			mRepo.AssertExpectations(t)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		mRepo.On("List", ctx, repository.PageQuery{Limit: 100}).Return(nil, errors.New("db down")).Once()

		res, err := svc.List(ctx, 0, 100)

		assert.EqualError(t, err, "list: db down")
		assert.Nil(t, res)
	})
}

func TestCRUDService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		want := &model.Cliente{ID: 3, Nombre: "Ana"}
		mRepo.On("FindByID", ctx, int64(3)).Return(want, nil).Once()

		got, err := svc.Get(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("absent row maps to ErrNotFound", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		mRepo.On("FindByID", ctx, int64(999)).Return(nil, repository.ErrNotFound).Once()

		got, err := svc.Get(ctx, 999)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("non-positive id is not found without a query", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)

		for _, id := range []int64{0, -7} {
			_, err := svc.Get(ctx, id)
			assert.ErrorIs(t, err, ErrNotFound)
		}
		mRepo.AssertNumberOfCalls(t, "FindByID", 0)
	})

	t.Run("storage error is wrapped", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		dbErr := errors.New("conn refused")
		mRepo.On("FindByID", ctx, int64(1)).Return(nil, dbErr).Once()

		_, err := svc.Get(ctx, 1)

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestCRUDService_CreateProducto_InvalidReference(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockCRUDRepository[model.Producto, model.ProductoInput])
	svc := NewProductoService(mRepo)

	in := model.ProductoInput{Codigo: "X", IDLab: 999, IDPresentacion: 1}
	mRepo.On("Create", ctx, in).
		Return(nil, &pgconn.PgError{Code: "23503", ConstraintName: "producto_id_lab_fkey"}).Once()

	got, err := svc.Create(ctx, in)

	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "producto_id_lab_fkey")
	assert.Nil(t, got)
	mRepo.AssertExpectations(t)
}

func TestCRUDService_Update(t *testing.T) {
	ctx := context.Background()
	in := model.ClienteInput{Nombre: "Nuevo", Telefono: new(string), Direccion: new(string)}

	t.Run("full replacement", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		want := &model.Cliente{ID: 5, Nombre: "Nuevo"}
		mRepo.On("Update", ctx, int64(5), in).Return(want, nil).Once()

		got, err := svc.Update(ctx, 5, in)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing row", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		mRepo.On("Update", ctx, int64(6), in).Return(nil, repository.ErrNotFound).Once()

		got, err := svc.Update(ctx, 6, in)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, got)
	})

	t.Run("non-positive id", func(t *testing.T) {
		mRepo := new(clienteRepoMock)
		svc := NewClienteService(mRepo)
		_, err := svc.Update(ctx, -1, in)
		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertNumberOfCalls(t, "Update", 0)
	})
}

func TestCRUDService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns deleted row", func(t *testing.T) {
		mRepo := new(repoMocks.MockCRUDRepository[model.Presentacion, model.PresentacionInput])
		svc := NewPresentacionService(mRepo)
		want := &model.Presentacion{ID: 2, Nombre: "Tableta", NombreCorto: "TAB"}
		mRepo.On("Delete", ctx, int64(2)).Return(want, nil).Once()

		got, err := svc.Delete(ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing presentacion is not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockCRUDRepository[model.Presentacion, model.PresentacionInput])
		svc := NewPresentacionService(mRepo)
		mRepo.On("Delete", ctx, int64(9)).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Delete(ctx, 9)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-positive id", func(t *testing.T) {
		mRepo := new(repoMocks.MockCRUDRepository[model.Presentacion, model.PresentacionInput])
		svc := NewPresentacionService(mRepo)

		_, err := svc.Delete(ctx, 0)

		assert.ErrorIs(t, err, ErrNotFound)
		mRepo.AssertNumberOfCalls(t, "Delete", 0)
	})

	t.Run("laboratorio referenced by productos", func(t *testing.T) {
		mRepo := new(repoMocks.MockCRUDRepository[model.Laboratorio, model.LaboratorioInput])
		svc := NewLaboratorioService(mRepo)
		mRepo.On("Delete", ctx, int64(1)).
			Return(nil, &pgconn.PgError{Code: "23503", ConstraintName: "producto_id_lab_fkey"}).Once()

		_, err := svc.Delete(ctx, 1)

		assert.ErrorIs(t, err, ErrInUse)
		assert.NotErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("other constraint errors pass through", func(t *testing.T) {
		mRepo := new(repoMocks.MockCRUDRepository[model.Laboratorio, model.LaboratorioInput])
		svc := NewLaboratorioService(mRepo)
		mRepo.On("Delete", ctx, int64(1)).
			Return(nil, &pgconn.PgError{Code: "57014"}).Once()

		_, err := svc.Delete(ctx, 1)

		var pgErr *pgconn.PgError
		assert.ErrorAs(t, err, &pgErr)
		assert.NotErrorIs(t, err, ErrInUse)
	})
}
