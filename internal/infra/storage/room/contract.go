package room

import "github.com/m04kA/LodgeBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
