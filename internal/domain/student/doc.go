// Package student содержит доменную модель списка студентов.
//
// Это демонстрация принципа единственной ответственности (Single
// Responsibility): сервис отвечает только за ведение списка студентов -
// валидацию имён, добавление, удаление по позиции и выдачу защитной копии
// списка. Хранение делегировано репозиторию, генерация идентификаторов -
// генератору, доставка событий - шине.
//
// # Архитектурные принципы
//
//  1. Нулевые внешние зависимости - только стандартная библиотека Go
//  2. Dependency Inversion - пакет определяет интерфейсы Repository и
//     IDGenerator, реализации находятся в infrastructure
//  3. Доменные события публикуются при каждом изменении списка
//
// # Пример использования
//
//	svc, err := student.NewService(repo, ids, bus)
//	if err != nil {
//	    return err
//	}
//
//	enrolled, err := svc.Add(ctx, "Aidos")
//	if err != nil {
//	    return err
//	}
//
//	roster, err := svc.Get(ctx)       // защитная копия
//	removed, err := svc.Delete(ctx, 0) // явная ошибка при выходе за границы
package student
