package purchase_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	purchasehttp "github.com/fornada/fornada/internal/http/purchase"
	"github.com/fornada/fornada/internal/purchase"
)

func TestHandler_Transitions(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name       string
		path       string
		setupMock  func(tx *purchase.MockUpdateTx)
		wantCode   int
		wantStatus purchase.Status
	}

	tests := []testCase{
		{
			name: "ConfirmPending",
			path: "/purchases/" + id.String() + "/confirm",
			setupMock: func(tx *purchase.MockUpdateTx) {
				item := &purchase.Item{ID: uuid.New(), IngredientID: uuid.New(), Quantity: decimal.NewFromInt(50)}
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).
					Return(&purchase.Purchase{ID: id, Status: purchase.StatusPending, Items: []*purchase.Item{item}}, nil)
				tx.EXPECT().ReceiveItem(gomock.Any(), item).Return(nil)
				tx.EXPECT().SetStatus(gomock.Any(), id, purchase.StatusConfirmed).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: purchase.StatusConfirmed,
		},
		{
			name: "CancelPending",
			path: "/purchases/" + id.String() + "/cancel",
			setupMock: func(tx *purchase.MockUpdateTx) {
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).
					Return(&purchase.Purchase{ID: id, Status: purchase.StatusPending}, nil)
				tx.EXPECT().SetStatus(gomock.Any(), id, purchase.StatusCancelled).Return(nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: purchase.StatusCancelled,
		},
		{
			name: "ConfirmTwice",
			path: "/purchases/" + id.String() + "/confirm",
			setupMock: func(tx *purchase.MockUpdateTx) {
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).
					Return(&purchase.Purchase{ID: id, Status: purchase.StatusConfirmed}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "Missing",
			path: "/purchases/" + id.String() + "/cancel",
			setupMock: func(tx *purchase.MockUpdateTx) {
				tx.EXPECT().GetPurchaseForUpdate(gomock.Any(), id).Return(nil, purchase.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "InvalidID",
			path:     "/purchases/not-a-uuid/confirm",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := purchase.NewMockRepository(ctrl)

			if tt.setupMock != nil {
				tx := purchase.NewMockUpdateTx(ctrl)
				repo.EXPECT().BeginUpdate(gomock.Any()).Return(tx, nil)
				tx.EXPECT().Rollback().Return(nil)
				tt.setupMock(tx)
			}

			r := chi.NewRouter()
			r.Route("/purchases", purchasehttp.NewHandler(purchase.NewService(repo)).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var body struct {
				ID     uuid.UUID       `json:"id"`
				Status purchase.Status `json:"status"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, id, body.ID)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}
