// internal/service/keyedmutex.go
package service

import "sync"

// keyedMutex はキー単位の排他制御を提供します。
// 同一キーの処理を直列化しつつ、異なるキー同士は並行に進められます。
// ミューテックスはキーごとに生成したまま保持します。キー数は
// アクティブな (学習者, 単語) の組に比例する程度で、解放管理の
// 複雑さに見合わないためです。
type keyedMutex struct {
	mutexes sync.Map // key:string -> *sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{}
}

// Lock はキーに対応するミューテックスを取得してロックし、
// アンロック用の関数を返します。
func (km *keyedMutex) Lock(key string) func() {
	value, _ := km.mutexes.LoadOrStore(key, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
