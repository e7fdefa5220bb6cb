package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeySeismicSnapshotPath string = "SEISMIC_SNAPSHOT_PATH"
	EnvKeySeismicLogDir       string = "SEISMIC_LOG_DIR"

	EnvKeySeismicHttpHostPort string = "SEISMIC_HTTP_HOST_PORT"

	EnvKeySeismicLivenessPeriodSeconds string = "SEISMIC_LIVENESS_PERIOD_SECONDS"
	EnvKeySeismicQuakeThreshold        string = "SEISMIC_QUAKE_THRESHOLD"

	EnvKeySeismicDefaultRate  string = "SEISMIC_DEFAULT_RATE"
	EnvKeySeismicDefaultBurst string = "SEISMIC_DEFAULT_BURST"

	LoggerNameHubCore   string = "hub_core"
	LoggerNameWsGateway string = "ws_gateway"

	LoggerFieldHubCategory  string = "category"
	LoggerCategoryRegistry  string = "registry"
	LoggerCategoryDirectory string = "directory"
	LoggerCategoryIngest    string = "ingest"
	LoggerCategoryBroadcast string = "broadcast"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryLiveness  string = "liveness"
	LoggerCategorySnapshot  string = "snapshot"
)
