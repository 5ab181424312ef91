package remnant

import (
	"strings"
	"testing"

	"apo-analyzer/core/database"
	"apo-analyzer/core/storage/mocks"
	"apo-analyzer/feature/remnant/sites"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const flaggedRow = "[APOPLUS]2 0x1e0a0a06 0x1e0a3206 0x00000099 0x00000001 ... HEAD_ERROR_DETECTING"

// sampleLog covers two sites: Jasmine carries one remnant row towards
// SNI-POI, SNI-POI is clean.
var sampleLog = strings.Join([]string{
	`ZXPOTN(config)# exec diag_c("cc-cmd setcallcv SetupApo")`,
	"[WASON]Conn [30.10.10.6 30.10.50.6 5 10]",
	"[WASON]ushell command finished",
	`ZXPOTN(config)# exec diag_c("cc-cmd setcallcv SetupApo")`,
	"[WASON]Conn [30.10.50.6 30.10.10.6 7 3]",
	"[WASON]ushell command finished",
	"[APOPLUS]=== show all och-inst ===",
	"[APOPLUS]TopNeIp: 10.1.10.9",
	"[APOPLUS]No SourceNodeID DestNodeID TrafficID ConnNo ... State",
	"[APOPLUS]1 0x1e0a0a06 0x1e0a3206 0x00000005 0x0000000a ... HEAD_DETECT_WAITING",
	flaggedRow,
	"[APOPLUS]ushell command finished",
	"[APOPLUS]=== show all och-inst ===",
	"[APOPLUS]TopNeIp: 10.1.50.9",
	"[APOPLUS]1 0x1e0a3206 0x1e0a0a06 0x00000007 0x00000003 ... HEAD_DETECT_WAITING",
	"[APOPLUS]ushell command finished",
}, "\n")

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// setupSQLite opens a migrated in-memory database.
func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestService(t *testing.T, db *gorm.DB) (*Service, *mocks.Client) {
	client := new(mocks.Client)
	svc := NewService(client, "apo-logs", zap.NewNop(), db, Options{
		UploadsPrefix: "uploads",
		Sites:         sites.Default(),
	})
	if db != nil {
		require.NoError(t, svc.EnsureSchema())
	}
	return svc, client
}
