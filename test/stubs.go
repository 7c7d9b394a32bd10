package test

import (
	"go.uber.org/mock/gomock"

	"inkwell/test/mocks"
)

func stubLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

func stubMetrics(ctrl *gomock.Controller, mockMetrics *mocks.MockIMetrics) {
	obs := mocks.NewMockIRequestObserver(ctrl)
	obs.EXPECT().Finish().AnyTimes()
	mockMetrics.EXPECT().StartApiRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartApubRequestIn(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().StartApubRequestOut(gomock.Any()).Return(obs).AnyTimes()
	mockMetrics.EXPECT().ActivityReceived(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ActivitySent(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().DeliveryFailed(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TotalFollowers(gomock.Any()).AnyTimes()
}
