package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/yarnstash-backend/internal/domain"
	"github.com/heartmarshall/yarnstash-backend/internal/export"
	"github.com/heartmarshall/yarnstash-backend/internal/service/activity"
	"github.com/heartmarshall/yarnstash-backend/internal/service/backup"
	"github.com/heartmarshall/yarnstash-backend/internal/service/dashboard"
	"github.com/heartmarshall/yarnstash-backend/internal/service/drive"
	"github.com/heartmarshall/yarnstash-backend/internal/service/inventory"
	"github.com/heartmarshall/yarnstash-backend/internal/service/shopping"
)

var (
	_ activityService = &activityServiceMock{}
	_ driveService    = &driveServiceMock{}
	_ backupService   = &backupServiceMock{}
	_ shoppingService = &shoppingServiceMock{}

	_ dashboardService = &dashboardServiceMock{}
	_ inventoryService = &inventoryServiceMock{}
)

type activityServiceMock struct {
	GetRecentActivityFunc func(ctx context.Context, input activity.RecentInput) (*activity.RecentResult, error)
	GetSummaryFunc        func(ctx context.Context, input activity.SummaryInput) (*domain.ActivitySummary, error)
	GetCalendarFunc       func(ctx context.Context, input activity.CalendarInput) (*domain.ActivityCalendar, error)
	ExportLogFunc         func(ctx context.Context, input activity.ExportInput) (export.Output, error)
}

func (m *activityServiceMock) GetRecentActivity(ctx context.Context, input activity.RecentInput) (*activity.RecentResult, error) {
	if m.GetRecentActivityFunc == nil {
		panic("activityServiceMock.GetRecentActivityFunc: method is nil but activityService.GetRecentActivity was just called")
	}
	return m.GetRecentActivityFunc(ctx, input)
}

func (m *activityServiceMock) GetSummary(ctx context.Context, input activity.SummaryInput) (*domain.ActivitySummary, error) {
	if m.GetSummaryFunc == nil {
		panic("activityServiceMock.GetSummaryFunc: method is nil but activityService.GetSummary was just called")
	}
	return m.GetSummaryFunc(ctx, input)
}

func (m *activityServiceMock) GetCalendar(ctx context.Context, input activity.CalendarInput) (*domain.ActivityCalendar, error) {
	if m.GetCalendarFunc == nil {
		panic("activityServiceMock.GetCalendarFunc: method is nil but activityService.GetCalendar was just called")
	}
	return m.GetCalendarFunc(ctx, input)
}

func (m *activityServiceMock) ExportLog(ctx context.Context, input activity.ExportInput) (export.Output, error) {
	if m.ExportLogFunc == nil {
		panic("activityServiceMock.ExportLogFunc: method is nil but activityService.ExportLog was just called")
	}
	return m.ExportLogFunc(ctx, input)
}

type driveServiceMock struct {
	AuthURLFunc      func(ctx context.Context) (string, error)
	ConnectFunc      func(ctx context.Context, code, state string) (*drive.ConnectResult, error)
	DisconnectFunc   func(ctx context.Context) error
	StatusFunc       func(ctx context.Context) (*drive.Status, error)
	UploadFileFunc   func(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	DownloadFileFunc func(ctx context.Context, fileID string) ([]byte, error)
	DeleteFileFunc   func(ctx context.Context, fileID string) error
	CreateFolderFunc func(ctx context.Context, name, parentID string) (string, error)
	ListFoldersFunc  func(ctx context.Context) ([]drive.Folder, error)
	SyncHistoryFunc  func(ctx context.Context, limit, offset int) (*drive.SyncHistory, error)
}

func (m *driveServiceMock) AuthURL(ctx context.Context) (string, error) {
	if m.AuthURLFunc == nil {
		panic("driveServiceMock.AuthURLFunc: method is nil but driveService.AuthURL was just called")
	}
	return m.AuthURLFunc(ctx)
}

func (m *driveServiceMock) Connect(ctx context.Context, code, state string) (*drive.ConnectResult, error) {
	if m.ConnectFunc == nil {
		panic("driveServiceMock.ConnectFunc: method is nil but driveService.Connect was just called")
	}
	return m.ConnectFunc(ctx, code, state)
}

func (m *driveServiceMock) Disconnect(ctx context.Context) error {
	if m.DisconnectFunc == nil {
		panic("driveServiceMock.DisconnectFunc: method is nil but driveService.Disconnect was just called")
	}
	return m.DisconnectFunc(ctx)
}

func (m *driveServiceMock) Status(ctx context.Context) (*drive.Status, error) {
	if m.StatusFunc == nil {
		panic("driveServiceMock.StatusFunc: method is nil but driveService.Status was just called")
	}
	return m.StatusFunc(ctx)
}

func (m *driveServiceMock) UploadFile(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	if m.UploadFileFunc == nil {
		panic("driveServiceMock.UploadFileFunc: method is nil but driveService.UploadFile was just called")
	}
	return m.UploadFileFunc(ctx, req)
}

func (m *driveServiceMock) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if m.DownloadFileFunc == nil {
		panic("driveServiceMock.DownloadFileFunc: method is nil but driveService.DownloadFile was just called")
	}
	return m.DownloadFileFunc(ctx, fileID)
}

func (m *driveServiceMock) DeleteFile(ctx context.Context, fileID string) error {
	if m.DeleteFileFunc == nil {
		panic("driveServiceMock.DeleteFileFunc: method is nil but driveService.DeleteFile was just called")
	}
	return m.DeleteFileFunc(ctx, fileID)
}

func (m *driveServiceMock) CreateFolder(ctx context.Context, name, parentID string) (string, error) {
	if m.CreateFolderFunc == nil {
		panic("driveServiceMock.CreateFolderFunc: method is nil but driveService.CreateFolder was just called")
	}
	return m.CreateFolderFunc(ctx, name, parentID)
}

func (m *driveServiceMock) ListFolders(ctx context.Context) ([]drive.Folder, error) {
	if m.ListFoldersFunc == nil {
		panic("driveServiceMock.ListFoldersFunc: method is nil but driveService.ListFolders was just called")
	}
	return m.ListFoldersFunc(ctx)
}

func (m *driveServiceMock) SyncHistory(ctx context.Context, limit, offset int) (*drive.SyncHistory, error) {
	if m.SyncHistoryFunc == nil {
		panic("driveServiceMock.SyncHistoryFunc: method is nil but driveService.SyncHistory was just called")
	}
	return m.SyncHistoryFunc(ctx, limit, offset)
}

type backupServiceMock struct {
	CreateFullBackupFunc  func(ctx context.Context, userID uuid.UUID) (domain.UploadResult, error)
	BackupPatternsFunc    func(ctx context.Context, userID uuid.UUID, files []backup.PatternFile) (*domain.PatternBackupResult, error)
	ListBackupsFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.ObjectMetadata, error)
	CleanupOldBackupsFunc func(ctx context.Context, userID uuid.UUID, keepCount int) (domain.RetentionResult, error)
	ExportSnapshotFunc    func(ctx context.Context, userID uuid.UUID, kind export.Kind) (export.Output, string, error)

	mu           sync.Mutex
	cleanupCalls []int
}

func (m *backupServiceMock) ExportSnapshot(ctx context.Context, userID uuid.UUID, kind export.Kind) (export.Output, string, error) {
	if m.ExportSnapshotFunc == nil {
		panic("backupServiceMock.ExportSnapshotFunc: method is nil but backupService.ExportSnapshot was just called")
	}
	return m.ExportSnapshotFunc(ctx, userID, kind)
}

func (m *backupServiceMock) CreateFullBackup(ctx context.Context, userID uuid.UUID) (domain.UploadResult, error) {
	if m.CreateFullBackupFunc == nil {
		panic("backupServiceMock.CreateFullBackupFunc: method is nil but backupService.CreateFullBackup was just called")
	}
	return m.CreateFullBackupFunc(ctx, userID)
}

func (m *backupServiceMock) BackupPatterns(ctx context.Context, userID uuid.UUID, files []backup.PatternFile) (*domain.PatternBackupResult, error) {
	if m.BackupPatternsFunc == nil {
		panic("backupServiceMock.BackupPatternsFunc: method is nil but backupService.BackupPatterns was just called")
	}
	return m.BackupPatternsFunc(ctx, userID, files)
}

func (m *backupServiceMock) ListBackups(ctx context.Context, userID uuid.UUID) ([]domain.ObjectMetadata, error) {
	if m.ListBackupsFunc == nil {
		panic("backupServiceMock.ListBackupsFunc: method is nil but backupService.ListBackups was just called")
	}
	return m.ListBackupsFunc(ctx, userID)
}

func (m *backupServiceMock) CleanupOldBackups(ctx context.Context, userID uuid.UUID, keepCount int) (domain.RetentionResult, error) {
	if m.CleanupOldBackupsFunc == nil {
		panic("backupServiceMock.CleanupOldBackupsFunc: method is nil but backupService.CleanupOldBackups was just called")
	}
	m.mu.Lock()
	m.cleanupCalls = append(m.cleanupCalls, keepCount)
	m.mu.Unlock()
	return m.CleanupOldBackupsFunc(ctx, userID, keepCount)
}

func (m *backupServiceMock) CleanupOldBackupsCalls() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleanupCalls
}

type shoppingServiceMock struct {
	ListListsFunc     func(ctx context.Context) ([]domain.ShoppingList, error)
	GetListFunc       func(ctx context.Context, listID uuid.UUID) (*shopping.ListWithTotals, error)
	CreateListFunc    func(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error)
	GetActiveListFunc func(ctx context.Context) (*shopping.ListWithTotals, error)
	UpdateListFunc    func(ctx context.Context, listID uuid.UUID, input shopping.UpdateListInput) (*domain.ShoppingList, error)
	DeleteListFunc    func(ctx context.Context, listID uuid.UUID) error
	AddItemFunc       func(ctx context.Context, listID uuid.UUID, input shopping.AddItemInput) (*domain.ShoppingListItem, error)
	UpdateItemFunc    func(ctx context.Context, listID, itemID uuid.UUID, input shopping.UpdateItemInput) (*domain.ShoppingListItem, error)
	RemoveItemFunc    func(ctx context.Context, listID, itemID uuid.UUID) error
	MarkPurchasedFunc func(ctx context.Context, listID, itemID uuid.UUID, input shopping.MarkPurchasedInput) (*domain.ShoppingListItem, error)
	ExportFunc        func(ctx context.Context, listID uuid.UUID, kind export.Kind) (export.Output, string, error)
}

func (m *shoppingServiceMock) ListLists(ctx context.Context) ([]domain.ShoppingList, error) {
	if m.ListListsFunc == nil {
		panic("shoppingServiceMock.ListListsFunc: method is nil but shoppingService.ListLists was just called")
	}
	return m.ListListsFunc(ctx)
}

func (m *shoppingServiceMock) GetList(ctx context.Context, listID uuid.UUID) (*shopping.ListWithTotals, error) {
	if m.GetListFunc == nil {
		panic("shoppingServiceMock.GetListFunc: method is nil but shoppingService.GetList was just called")
	}
	return m.GetListFunc(ctx, listID)
}

func (m *shoppingServiceMock) CreateList(ctx context.Context, input shopping.CreateListInput) (*domain.ShoppingList, error) {
	if m.CreateListFunc == nil {
		panic("shoppingServiceMock.CreateListFunc: method is nil but shoppingService.CreateList was just called")
	}
	return m.CreateListFunc(ctx, input)
}

func (m *shoppingServiceMock) GetActiveList(ctx context.Context) (*shopping.ListWithTotals, error) {
	if m.GetActiveListFunc == nil {
		panic("shoppingServiceMock.GetActiveListFunc: method is nil but shoppingService.GetActiveList was just called")
	}
	return m.GetActiveListFunc(ctx)
}

func (m *shoppingServiceMock) UpdateList(ctx context.Context, listID uuid.UUID, input shopping.UpdateListInput) (*domain.ShoppingList, error) {
	if m.UpdateListFunc == nil {
		panic("shoppingServiceMock.UpdateListFunc: method is nil but shoppingService.UpdateList was just called")
	}
	return m.UpdateListFunc(ctx, listID, input)
}

func (m *shoppingServiceMock) DeleteList(ctx context.Context, listID uuid.UUID) error {
	if m.DeleteListFunc == nil {
		panic("shoppingServiceMock.DeleteListFunc: method is nil but shoppingService.DeleteList was just called")
	}
	return m.DeleteListFunc(ctx, listID)
}

func (m *shoppingServiceMock) AddItem(ctx context.Context, listID uuid.UUID, input shopping.AddItemInput) (*domain.ShoppingListItem, error) {
	if m.AddItemFunc == nil {
		panic("shoppingServiceMock.AddItemFunc: method is nil but shoppingService.AddItem was just called")
	}
	return m.AddItemFunc(ctx, listID, input)
}

func (m *shoppingServiceMock) UpdateItem(ctx context.Context, listID, itemID uuid.UUID, input shopping.UpdateItemInput) (*domain.ShoppingListItem, error) {
	if m.UpdateItemFunc == nil {
		panic("shoppingServiceMock.UpdateItemFunc: method is nil but shoppingService.UpdateItem was just called")
	}
	return m.UpdateItemFunc(ctx, listID, itemID, input)
}

func (m *shoppingServiceMock) RemoveItem(ctx context.Context, listID, itemID uuid.UUID) error {
	if m.RemoveItemFunc == nil {
		panic("shoppingServiceMock.RemoveItemFunc: method is nil but shoppingService.RemoveItem was just called")
	}
	return m.RemoveItemFunc(ctx, listID, itemID)
}

func (m *shoppingServiceMock) MarkPurchased(ctx context.Context, listID, itemID uuid.UUID, input shopping.MarkPurchasedInput) (*domain.ShoppingListItem, error) {
	if m.MarkPurchasedFunc == nil {
		panic("shoppingServiceMock.MarkPurchasedFunc: method is nil but shoppingService.MarkPurchased was just called")
	}
	return m.MarkPurchasedFunc(ctx, listID, itemID, input)
}

func (m *shoppingServiceMock) Export(ctx context.Context, listID uuid.UUID, kind export.Kind) (export.Output, string, error) {
	if m.ExportFunc == nil {
		panic("shoppingServiceMock.ExportFunc: method is nil but shoppingService.Export was just called")
	}
	return m.ExportFunc(ctx, listID, kind)
}

type dashboardServiceMock struct {
	GetStatsFunc             func(ctx context.Context) (*domain.DashboardStats, error)
	GetRecentProjectsFunc    func(ctx context.Context, input dashboard.RecentProjectsInput) ([]domain.ProjectWithProgress, error)
	GetYarnUsageFunc         func(ctx context.Context) (*domain.YarnUsage, error)
	GetUpcomingDeadlinesFunc func(ctx context.Context, input dashboard.DeadlinesInput) ([]domain.Project, error)
	GetCompletionRateFunc    func(ctx context.Context, input dashboard.CompletionRateInput) (*domain.CompletionRate, error)
}

func (m *dashboardServiceMock) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	if m.GetStatsFunc == nil {
		panic("dashboardServiceMock.GetStatsFunc: method is nil but dashboardService.GetStats was just called")
	}
	return m.GetStatsFunc(ctx)
}

func (m *dashboardServiceMock) GetRecentProjects(ctx context.Context, input dashboard.RecentProjectsInput) ([]domain.ProjectWithProgress, error) {
	if m.GetRecentProjectsFunc == nil {
		panic("dashboardServiceMock.GetRecentProjectsFunc: method is nil but dashboardService.GetRecentProjects was just called")
	}
	return m.GetRecentProjectsFunc(ctx, input)
}

func (m *dashboardServiceMock) GetYarnUsage(ctx context.Context) (*domain.YarnUsage, error) {
	if m.GetYarnUsageFunc == nil {
		panic("dashboardServiceMock.GetYarnUsageFunc: method is nil but dashboardService.GetYarnUsage was just called")
	}
	return m.GetYarnUsageFunc(ctx)
}

func (m *dashboardServiceMock) GetUpcomingDeadlines(ctx context.Context, input dashboard.DeadlinesInput) ([]domain.Project, error) {
	if m.GetUpcomingDeadlinesFunc == nil {
		panic("dashboardServiceMock.GetUpcomingDeadlinesFunc: method is nil but dashboardService.GetUpcomingDeadlines was just called")
	}
	return m.GetUpcomingDeadlinesFunc(ctx, input)
}

func (m *dashboardServiceMock) GetCompletionRate(ctx context.Context, input dashboard.CompletionRateInput) (*domain.CompletionRate, error) {
	if m.GetCompletionRateFunc == nil {
		panic("dashboardServiceMock.GetCompletionRateFunc: method is nil but dashboardService.GetCompletionRate was just called")
	}
	return m.GetCompletionRateFunc(ctx, input)
}

type inventoryServiceMock struct {
	ListYarnFunc            func(ctx context.Context, input inventory.YarnListInput) (*inventory.Page[domain.YarnStock], error)
	GetYarnFunc             func(ctx context.Context, yarnID uuid.UUID) (*domain.YarnStock, error)
	CreateYarnFunc          func(ctx context.Context, input inventory.YarnInput) (*domain.YarnStock, error)
	UpdateYarnFunc          func(ctx context.Context, yarnID uuid.UUID, input inventory.YarnInput) (*domain.YarnStock, error)
	DeleteYarnFunc          func(ctx context.Context, yarnID uuid.UUID) error
	ListPatternsFunc        func(ctx context.Context, input inventory.PatternListInput) (*inventory.Page[domain.Pattern], error)
	GetPatternFunc          func(ctx context.Context, patternID uuid.UUID) (*domain.Pattern, error)
	CreatePatternFunc       func(ctx context.Context, input inventory.PatternInput) (*domain.Pattern, error)
	UpdatePatternFunc       func(ctx context.Context, patternID uuid.UUID, input inventory.PatternInput) (*domain.Pattern, error)
	DeletePatternFunc       func(ctx context.Context, patternID uuid.UUID) error
	ListProjectsFunc        func(ctx context.Context, input inventory.ProjectListInput) (*inventory.Page[domain.Project], error)
	GetProjectFunc          func(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	CreateProjectFunc       func(ctx context.Context, input inventory.ProjectInput) (*domain.Project, error)
	UpdateProjectFunc       func(ctx context.Context, projectID uuid.UUID, input inventory.ProjectInput) (*domain.Project, error)
	UpdateProjectStatusFunc func(ctx context.Context, projectID uuid.UUID, input inventory.StatusInput) (*domain.Project, error)
	DeleteProjectFunc       func(ctx context.Context, projectID uuid.UUID) error
	AddProgressFunc         func(ctx context.Context, projectID uuid.UUID, input inventory.ProgressInput) (*domain.ProjectProgress, error)
	ListProgressFunc        func(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectProgress, error)
}

func (m *inventoryServiceMock) ListYarn(ctx context.Context, input inventory.YarnListInput) (*inventory.Page[domain.YarnStock], error) {
	if m.ListYarnFunc == nil {
		panic("inventoryServiceMock.ListYarnFunc: method is nil but inventoryService.ListYarn was just called")
	}
	return m.ListYarnFunc(ctx, input)
}

func (m *inventoryServiceMock) GetYarn(ctx context.Context, yarnID uuid.UUID) (*domain.YarnStock, error) {
	if m.GetYarnFunc == nil {
		panic("inventoryServiceMock.GetYarnFunc: method is nil but inventoryService.GetYarn was just called")
	}
	return m.GetYarnFunc(ctx, yarnID)
}

func (m *inventoryServiceMock) CreateYarn(ctx context.Context, input inventory.YarnInput) (*domain.YarnStock, error) {
	if m.CreateYarnFunc == nil {
		panic("inventoryServiceMock.CreateYarnFunc: method is nil but inventoryService.CreateYarn was just called")
	}
	return m.CreateYarnFunc(ctx, input)
}

func (m *inventoryServiceMock) UpdateYarn(ctx context.Context, yarnID uuid.UUID, input inventory.YarnInput) (*domain.YarnStock, error) {
	if m.UpdateYarnFunc == nil {
		panic("inventoryServiceMock.UpdateYarnFunc: method is nil but inventoryService.UpdateYarn was just called")
	}
	return m.UpdateYarnFunc(ctx, yarnID, input)
}

func (m *inventoryServiceMock) DeleteYarn(ctx context.Context, yarnID uuid.UUID) error {
	if m.DeleteYarnFunc == nil {
		panic("inventoryServiceMock.DeleteYarnFunc: method is nil but inventoryService.DeleteYarn was just called")
	}
	return m.DeleteYarnFunc(ctx, yarnID)
}

func (m *inventoryServiceMock) ListPatterns(ctx context.Context, input inventory.PatternListInput) (*inventory.Page[domain.Pattern], error) {
	if m.ListPatternsFunc == nil {
		panic("inventoryServiceMock.ListPatternsFunc: method is nil but inventoryService.ListPatterns was just called")
	}
	return m.ListPatternsFunc(ctx, input)
}

func (m *inventoryServiceMock) GetPattern(ctx context.Context, patternID uuid.UUID) (*domain.Pattern, error) {
	if m.GetPatternFunc == nil {
		panic("inventoryServiceMock.GetPatternFunc: method is nil but inventoryService.GetPattern was just called")
	}
	return m.GetPatternFunc(ctx, patternID)
}

func (m *inventoryServiceMock) CreatePattern(ctx context.Context, input inventory.PatternInput) (*domain.Pattern, error) {
	if m.CreatePatternFunc == nil {
		panic("inventoryServiceMock.CreatePatternFunc: method is nil but inventoryService.CreatePattern was just called")
	}
	return m.CreatePatternFunc(ctx, input)
}

func (m *inventoryServiceMock) UpdatePattern(ctx context.Context, patternID uuid.UUID, input inventory.PatternInput) (*domain.Pattern, error) {
	if m.UpdatePatternFunc == nil {
		panic("inventoryServiceMock.UpdatePatternFunc: method is nil but inventoryService.UpdatePattern was just called")
	}
	return m.UpdatePatternFunc(ctx, patternID, input)
}

func (m *inventoryServiceMock) DeletePattern(ctx context.Context, patternID uuid.UUID) error {
	if m.DeletePatternFunc == nil {
		panic("inventoryServiceMock.DeletePatternFunc: method is nil but inventoryService.DeletePattern was just called")
	}
	return m.DeletePatternFunc(ctx, patternID)
}

func (m *inventoryServiceMock) ListProjects(ctx context.Context, input inventory.ProjectListInput) (*inventory.Page[domain.Project], error) {
	if m.ListProjectsFunc == nil {
		panic("inventoryServiceMock.ListProjectsFunc: method is nil but inventoryService.ListProjects was just called")
	}
	return m.ListProjectsFunc(ctx, input)
}

func (m *inventoryServiceMock) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	if m.GetProjectFunc == nil {
		panic("inventoryServiceMock.GetProjectFunc: method is nil but inventoryService.GetProject was just called")
	}
	return m.GetProjectFunc(ctx, projectID)
}

func (m *inventoryServiceMock) CreateProject(ctx context.Context, input inventory.ProjectInput) (*domain.Project, error) {
	if m.CreateProjectFunc == nil {
		panic("inventoryServiceMock.CreateProjectFunc: method is nil but inventoryService.CreateProject was just called")
	}
	return m.CreateProjectFunc(ctx, input)
}

func (m *inventoryServiceMock) UpdateProject(ctx context.Context, projectID uuid.UUID, input inventory.ProjectInput) (*domain.Project, error) {
	if m.UpdateProjectFunc == nil {
		panic("inventoryServiceMock.UpdateProjectFunc: method is nil but inventoryService.UpdateProject was just called")
	}
	return m.UpdateProjectFunc(ctx, projectID, input)
}

func (m *inventoryServiceMock) UpdateProjectStatus(ctx context.Context, projectID uuid.UUID, input inventory.StatusInput) (*domain.Project, error) {
	if m.UpdateProjectStatusFunc == nil {
		panic("inventoryServiceMock.UpdateProjectStatusFunc: method is nil but inventoryService.UpdateProjectStatus was just called")
	}
	return m.UpdateProjectStatusFunc(ctx, projectID, input)
}

func (m *inventoryServiceMock) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	if m.DeleteProjectFunc == nil {
		panic("inventoryServiceMock.DeleteProjectFunc: method is nil but inventoryService.DeleteProject was just called")
	}
	return m.DeleteProjectFunc(ctx, projectID)
}

func (m *inventoryServiceMock) AddProgress(ctx context.Context, projectID uuid.UUID, input inventory.ProgressInput) (*domain.ProjectProgress, error) {
	if m.AddProgressFunc == nil {
		panic("inventoryServiceMock.AddProgressFunc: method is nil but inventoryService.AddProgress was just called")
	}
	return m.AddProgressFunc(ctx, projectID, input)
}

func (m *inventoryServiceMock) ListProgress(ctx context.Context, projectID uuid.UUID) ([]domain.ProjectProgress, error) {
	if m.ListProgressFunc == nil {
		panic("inventoryServiceMock.ListProgressFunc: method is nil but inventoryService.ListProgress was just called")
	}
	return m.ListProgressFunc(ctx, projectID)
}
