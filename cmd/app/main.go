// @title Cluster Adapter API
// @version 1.0.0
// @description API для приема статуса кластера 3D-принтеров, разрешения конфигураций экструдеров и отдачи UI-моделей принтеров.
// @host localhost:8082
// @BasePath /api/v1
package main

import "github.com/iwtcode/clusterAdapter/internal/app"

func main() {
	// Создаем и запускаем новый экземпляр приложения fx
	app.New().Run()
}
