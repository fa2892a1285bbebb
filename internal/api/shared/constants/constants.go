package constants

const (
	MAX_INJECTED_ITEMS_PER_REQUEST = 5000
	MAX_PAGE_SIZE                  = 100
	MAX_TEST_TIMEOUT_MS            = int64(120_000)
	DEFAULT_OFFSET                 = 0
	DEFAULT_RUNS_LIMIT             = 20
	DEFAULT_ACTOR                  = "api"
)
